package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

type MediaController struct{}

func InitMediaController() *MediaController {
	return &MediaController{}
}

// Upload pushes a multipart image to Cloudinary. The returned secure URL
// is what products and configs store.
func (mc *MediaController) Upload(c *gin.Context) {
	formFile, _, err := c.Request.FormFile("file")
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.New("file is required"))
		return
	}

	uploadRes, err := util.FileUpload(models.File{File: formFile})
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "File uploaded", gin.H{
		"url":      uploadRes.SecureURL,
		"publicId": uploadRes.PublicID,
	})
}

func (mc *MediaController) Destroy(c *gin.Context) {
	publicId := c.Param("publicId")
	if publicId == "" {
		util.HandleError(c, http.StatusBadRequest, errors.New("publicId is required"))
		return
	}

	result, err := util.DestroyMedia(publicId)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "File deleted", gin.H{
		"result": result,
	})
}
