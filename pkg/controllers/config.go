package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"tranhart-io/api/internal/common"
	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/services"
	"tranhart-io/api/pkg/util"
)

type ConfigController struct {
	configService *services.ConfigService
}

func InitConfigController(configService *services.ConfigService) *ConfigController {
	return &ConfigController{
		configService: configService,
	}
}

// GetConfig returns the site configuration, or null data when none has
// been created yet.
func (cc *ConfigController) GetConfig(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	config, err := cc.configService.GetConfig(ctx)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", config)
}

func (cc *ConfigController) CreateConfig(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.WebsiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	config, err := cc.configService.CreateConfig(ctx, req)
	if err != nil {
		if err == services.ErrConfigExists {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Website config created", config)
}

// UpdateConfig upserts, so it also works before the first create.
func (cc *ConfigController) UpdateConfig(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.WebsiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	config, err := cc.configService.Upsert(ctx, req)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Website config updated", config)
}

func (cc *ConfigController) DeleteConfig(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	deleted, err := cc.configService.DeleteConfig(ctx)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	if deleted == 0 {
		util.HandleError(c, http.StatusNotFound, errors.New("website config not found"))
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Website config deleted", gin.H{})
}
