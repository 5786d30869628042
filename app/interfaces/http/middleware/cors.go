package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"abled.ai/abled-api-gateway/config/environment_variables"
)

const (
	corsAllowedHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With"
	corsAllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
)

// CORS reflects the request origin back only when it appears in
// ALLOWED_CORS_HOSTS. Preflight requests are answered here and never
// reach the route handlers.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && slices.Contains(environment_variables.EnvironmentVariables.ALLOWED_CORS_HOSTS, origin) {
			header := c.Writer.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
