package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"tranhart-io/api/internal/auth"
	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/services"
	"tranhart-io/api/pkg/util"
)

// AdminOnly restricts access to admin and editor users. The session is
// resolved server-side; an expired or unknown key is a 401.
func AdminOnly(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.GetSessionAuto(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if session.Expired() {
			auth.DeleteSession(c)
			util.HandleError(c, http.StatusUnauthorized, errors.New("session expired"))
			c.Abort()
			return
		}

		currentUser, err := userService.GetUserByID(c.Request.Context(), session.UserId)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if currentUser.Role != models.RoleAdmin && currentUser.Role != models.RoleEditor {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "insufficient permissions: admin access required",
			})
			c.Abort()
			return
		}

		c.Set("currentUser", currentUser)
		c.Next()
	}
}
