package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"housebase/pkg/utils"
)

// AdminCodeMiddleware gates the admin-elevation route behind the shared
// code from the ADMIN_CODE environment variable. An unset code keeps
// the route closed rather than open.
func AdminCodeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("ADMIN_CODE")
		supplied := c.GetHeader("X-Admin-Code")

		if expected == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) != 1 {
			utils.RespondError(c, http.StatusForbidden, "Invalid admin code")
			c.Abort()
			return
		}

		c.Next()
	}
}
