package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tranhart-io/api/internal/common"
	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/services"
	"tranhart-io/api/pkg/util"
)

type ProductController struct {
	productService *services.ProductService
}

func InitProductController(productService *services.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// GetProducts lists products with the category populated. Without a
// limit parameter the whole matching set is returned.
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	query := common.GetProductListQuery(c)

	products, total, err := pc.productService.GetProducts(ctx, query)
	if err != nil {
		if err == primitive.ErrInvalidHex {
			util.HandleError(c, http.StatusBadRequest, errors.New("invalid category id"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleList(c, http.StatusOK, products, total)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	product, err := pc.productService.GetProductByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("product not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.productService.CreateProduct(ctx, req)
	if err != nil {
		switch {
		case err == primitive.ErrInvalidHex:
			util.HandleError(c, http.StatusBadRequest, errors.New("invalid category id"))
		case err == mongo.ErrNoDocuments:
			util.HandleError(c, http.StatusBadRequest, errors.New("category does not exist"))
		default:
			util.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Product created", product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.productService.UpdateProduct(ctx, id, req)
	if err != nil {
		switch {
		case err == primitive.ErrInvalidHex:
			util.HandleError(c, http.StatusBadRequest, errors.New("invalid category id"))
		case err == mongo.ErrNoDocuments:
			util.HandleError(c, http.StatusNotFound, errors.New("product or category not found"))
		default:
			util.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product updated", product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	if err := pc.productService.DeleteProduct(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("product not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product deleted", gin.H{})
}
