package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/pkg/helpers"
	"github.com/devconnect/devconnect-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth reads the x-auth-token header, validates it, and injects the user
// id into the Gin context for handlers.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-auth-token")
		if token == "" {
			response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Msg(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
