package middleware

import (
	"net/http"

	"landing_cms_backend/internal/services"
	"landing_cms_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminPasswordMiddleware guards config updates. The raw Authorization header value
// is the credential; there is no scheme prefix. A missing header never passes.
func AdminPasswordMiddleware(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, present := c.Request.Header["Authorization"]
		if !present || len(values) == 0 || !auth.Verify(values[0]) {
			utils.LogDebug("config update rejected", map[string]interface{}{"header_present": present})
			utils.RespondPlain(c, http.StatusUnauthorized, "UA")
			return
		}
		c.Next()
	}
}
