package common

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestGetPaginationArgsDefaults(t *testing.T) {
	args := GetPaginationArgs(testContext(""))

	assert.Equal(t, 0, args.Limit)
	assert.Equal(t, 1, args.Page)
	assert.Equal(t, "-createdAt", args.Sort)
}

func TestGetPaginationArgsReadsQuery(t *testing.T) {
	args := GetPaginationArgs(testContext("limit=20&page=3&sort=name"))

	assert.Equal(t, 20, args.Limit)
	assert.Equal(t, 3, args.Page)
	assert.Equal(t, "name", args.Sort)
}

func TestGetPaginationArgsClampsPage(t *testing.T) {
	args := GetPaginationArgs(testContext("page=0"))
	assert.Equal(t, 1, args.Page)

	args = GetPaginationArgs(testContext("page=banana"))
	assert.Equal(t, 1, args.Page)
}

func TestGetProductListQueryWithoutLimitReturnsEverything(t *testing.T) {
	query := GetProductListQuery(testContext("category=abc&search=sunset"))

	assert.False(t, query.Paginate)
	assert.Equal(t, 0, query.Limit)
	assert.Equal(t, "abc", query.Category)
	assert.Equal(t, "sunset", query.Search)
}

func TestGetProductListQueryWithLimitPaginates(t *testing.T) {
	query := GetProductListQuery(testContext("limit=10&page=2"))

	assert.True(t, query.Paginate)
	assert.Equal(t, 10, query.Limit)
	assert.Equal(t, 2, query.Page)
}

func TestGetProductListQueryBadValuesFallBack(t *testing.T) {
	query := GetProductListQuery(testContext("limit=abc&page=2"))
	assert.False(t, query.Paginate)

	query = GetProductListQuery(testContext("limit=10&page=zero"))
	assert.True(t, query.Paginate)
	assert.Equal(t, 1, query.Page)

	query = GetProductListQuery(testContext("limit=-5"))
	assert.False(t, query.Paginate)
}
