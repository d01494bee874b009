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

type MenuController struct {
	menuService *services.MenuService
}

func InitMenuController(menuService *services.MenuService) *MenuController {
	return &MenuController{
		menuService: menuService,
	}
}

// GetMenus returns the flat list the admin screen edits.
func (mc *MenuController) GetMenus(c *gin.Context) {
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

	menus, err := mc.menuService.GetMenus(ctx, isActive)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleList(c, http.StatusOK, menus, int64(len(menus)))
}

// GetMenuTree returns the nested tree of active menus for the public
// site navigation.
func (mc *MenuController) GetMenuTree(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	tree, err := mc.menuService.GetMenuTree(ctx)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", tree)
}

func (mc *MenuController) GetMenu(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	menu, err := mc.menuService.GetMenuByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("menu not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", menu)
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.menuService.CreateMenu(ctx, req)
	if err != nil {
		switch {
		case err == services.ErrMenuParentNotFound || err == primitive.ErrInvalidHex:
			util.HandleError(c, http.StatusBadRequest, err)
		case mongo.IsDuplicateKeyError(err):
			util.HandleError(c, http.StatusConflict, err)
		default:
			util.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu rejects parent assignments that would form a cycle before
// anything is persisted.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var req models.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.menuService.UpdateMenu(ctx, id, req)
	if err != nil {
		switch {
		case err == services.ErrMenuCycle || err == services.ErrMenuParentNotFound || err == primitive.ErrInvalidHex:
			util.HandleError(c, http.StatusBadRequest, err)
		case err == mongo.ErrNoDocuments:
			util.HandleError(c, http.StatusNotFound, errors.New("menu not found"))
		case mongo.IsDuplicateKeyError(err):
			util.HandleError(c, http.StatusConflict, err)
		default:
			util.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Menu updated", menu)
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	if err := mc.menuService.DeleteMenu(ctx, id); err != nil {
		switch err {
		case services.ErrMenuHasChildren:
			util.HandleError(c, http.StatusConflict, err)
		case mongo.ErrNoDocuments:
			util.HandleError(c, http.StatusNotFound, errors.New("menu not found"))
		default:
			util.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Menu deleted", gin.H{})
}
