package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors accumulated on the context into a JSON 500
// response when no handler has written one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		for _, e := range c.Errors {
			log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, e.Err)
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
