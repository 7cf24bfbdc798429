package middleware

import (
	"strings"

	"blogapi/config"

	"github.com/gin-gonic/gin"
)

// CORS allows the origins listed in the CORS_ALLOWED_ORIGINS config value
// (comma-separated).
func CORS(cfg *config.Config) gin.HandlerFunc {
	origins := strings.Split(cfg.CORSOrigins, ",")

	return func(c *gin.Context) {
		requestOrigin := c.GetHeader("Origin")

		var allowedOrigin string
		for _, origin := range origins {
			trimmedOrigin := strings.TrimSpace(origin)
			if trimmedOrigin != "" && trimmedOrigin == requestOrigin {
				allowedOrigin = requestOrigin
				break
			}
		}

		if allowedOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowedOrigin)
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
