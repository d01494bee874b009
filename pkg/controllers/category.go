package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tranhart-io/api/internal/common"
	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/services"
	"tranhart-io/api/pkg/util"
)

type CategoryController struct {
	categoryService *services.CategoryService
	productService  *services.ProductService
}

func InitCategoryController(categoryService *services.CategoryService, productService *services.ProductService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		productService:  productService,
	}
}

// GetCategories lists all categories, optionally filtered by isActive.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var isActive *bool
	if raw := c.Query("isActive"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, errors.New("isActive must be true or false"))
			return
		}
		isActive = &value
	}

	categories, err := cc.categoryService.GetCategories(ctx, isActive, c.DefaultQuery("sort", "-createdAt"))
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleList(c, http.StatusOK, categories, int64(len(categories)))
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid category id"))
		return
	}

	category, err := cc.categoryService.GetCategoryByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", category)
}

// GetCategoryBySlug resolves a category and one page of its products.
func (cc *CategoryController) GetCategoryBySlug(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	category, err := cc.categoryService.GetCategoryBySlug(ctx, c.Param("slug"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	pagination := common.GetPaginationArgs(c)
	if pagination.Limit <= 0 {
		pagination.Limit = common.DEFAULT_CATEGORY_PAGE_SIZE
	}

	products, total, err := cc.productService.GetProductsByCategory(ctx, category.ID, pagination)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", models.CategoryWithProducts{
		Category:   *category,
		Products:   products,
		Total:      total,
		Page:       pagination.Page,
		TotalPages: util.TotalPages(total, pagination.Limit),
	})
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	category, err := cc.categoryService.CreateCategory(ctx, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			util.HandleError(c, http.StatusConflict, err)
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Category created", category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid category id"))
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	category, err := cc.categoryService.UpdateCategory(ctx, id, req)
	if err != nil {
		switch {
		case err == mongo.ErrNoDocuments:
			util.HandleError(c, http.StatusNotFound, errors.New("category not found"))
		case mongo.IsDuplicateKeyError(err):
			util.HandleError(c, http.StatusConflict, err)
		default:
			util.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Category updated", category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid category id"))
		return
	}

	if err := cc.categoryService.DeleteCategory(ctx, id); err != nil {
		switch err {
		case services.ErrCategoryInUse:
			util.HandleError(c, http.StatusConflict, err)
		case mongo.ErrNoDocuments:
			util.HandleError(c, http.StatusNotFound, errors.New("category not found"))
		default:
			util.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Category deleted", gin.H{})
}
