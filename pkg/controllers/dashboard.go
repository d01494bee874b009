package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"tranhart-io/api/pkg/services"
	"tranhart-io/api/pkg/util"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func InitDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats serves every dashboard report behind a single endpoint,
// selected by the type query parameter. Defaults to the overview.
func (dc *DashboardController) GetStats(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	reportType := c.DefaultQuery("type", "overview")

	var (
		data interface{}
		err  error
	)

	switch reportType {
	case "overview":
		data, err = dc.dashboardService.GetOverview(ctx)
	case "users":
		data, err = dc.dashboardService.GetUserStats(ctx)
	case "categories":
		data, err = dc.dashboardService.GetCategoryStats(ctx)
	case "products":
		data, err = dc.dashboardService.GetProductStats(ctx)
	case "charts":
		data, err = dc.dashboardService.GetCharts(ctx)
	case "health":
		data, err = dc.dashboardService.GetHealth(ctx)
	case "all":
		data, err = dc.dashboardService.GetAll(ctx)
	default:
		util.HandleError(c, http.StatusBadRequest, errors.Errorf("unknown stats type %q", reportType))
		return
	}

	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"type":      reportType,
		"timestamp": time.Now().Format(time.RFC3339),
		"data":      data,
	})
}
