package common

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

var Validate = validator.New()

const (
	REQUEST_TIMEOUT_SECS = 30 * time.Second

	DEFAULT_CATEGORY_PAGE_SIZE = 12

	GROWTH_WINDOW_DAYS  = 30
	MONTHLY_STATS_SPAN  = 6
	WEEKLY_TREND_DAYS   = 7
	RECENT_ACTIVITY_MAX = 8
)

// GetPaginationArgs reads page/limit/sort query parameters. Limit 0 means
// the caller did not paginate.
func GetPaginationArgs(c *gin.Context) util.PaginationArgs {
	limit, _ := strconv.Atoi(c.Query("limit"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	sort := c.DefaultQuery("sort", "-createdAt")

	if page < 1 {
		page = 1
	}

	return util.PaginationArgs{
		Limit: limit,
		Page:  page,
		Sort:  sort,
	}
}

// GetProductListQuery reads the product list filters. A missing or
// unparsable limit disables pagination entirely.
func GetProductListQuery(c *gin.Context) models.ProductListQuery {
	query := models.ProductListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "-createdAt"),
		Page:     1,
	}

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		query.Limit = limit
		query.Paginate = true
		if page, err := strconv.Atoi(c.Query("page")); err == nil && page >= 1 {
			query.Page = page
		}
	}

	return query
}
