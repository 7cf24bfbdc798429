package middleware

import (
	"net/http"
	"strings"

	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// LoginPath is where unauthenticated requests to protected routes are sent.
const LoginPath = "/api/v1/auth/login"

// AuthRequired reads a bearer token (or the token query parameter for
// websocket upgrades) and puts the authenticated user id into the context.
// Requests without a valid token are redirected to the login route.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if websocket.IsWebSocketUpgrade(c.Request) {
			token = c.Query("token")
		} else {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = authHeader[7:]
			}
		}

		if token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		userID, err := utils.ValidateJWT(token)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
