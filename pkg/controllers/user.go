package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tranhart-io/api/internal/auth"
	"tranhart-io/api/internal/common"
	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/services"
	"tranhart-io/api/pkg/util"
)

type UserController struct {
	userService services.UserService
}

func InitUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Login authenticates with email and password, opens a redis-backed
// session and issues a short-lived access token.
func (uc *UserController) Login(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.UserLoginBody
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.userService.AuthenticateUser(ctx, req)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, services.ErrInvalidCredentials)
		return
	}

	uc.openSession(c, user)
}

// GoogleLogin verifies a Google ID token and signs in the matching
// local account.
func (uc *UserController) GoogleLogin(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.GoogleLoginBody
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.userService.AuthenticateGoogleUser(ctx, req.IDToken)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, services.ErrInvalidCredentials)
		return
	}

	uc.openSession(c, user)
}

func (uc *UserController) openSession(c *gin.Context, user *models.User) {
	sessionId, err := auth.SetSession(c, user.ID, user.Email, user.Role)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	accessToken, expiresAt, err := auth.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":        user,
		"sessionId":   sessionId,
		"accessToken": accessToken,
		"expiresAt":   expiresAt,
	})
}

// Logout tears down the server-side session and clears the cookie.
func (uc *UserController) Logout(c *gin.Context) {
	auth.DeleteSession(c)
	util.HandleSuccess(c, http.StatusOK, "Logged out", gin.H{})
}
