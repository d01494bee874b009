package util

import (
	"log"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func HandleSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
}

func HandleList(c *gin.Context, statusCode int, data interface{}, total int64) {
	c.JSON(statusCode, ListResponse{
		Success: true,
		Data:    data,
		Total:   total,
	})
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func HandleError(c *gin.Context, statusCode int, err error) {
	log.Printf("error: %v", err)
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

type PaginationArgs struct {
	Sort  string
	Limit int
	Page  int
}

// Skip converts 1-based page/limit into an offset. Page values below 1
// collapse to the first page.
func (p PaginationArgs) Skip() int64 {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return int64((page - 1) * p.Limit)
}

// TotalPages computes the page count for a result set.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}
