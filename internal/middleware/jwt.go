package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notesapi/internal/pkg/jwt"
	"notesapi/internal/pkg/response"
	"notesapi/internal/revoke"
)

const ContextUserIDKey = "user_id"

func JWTAuth(secret []byte, revocations *revoke.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Detail(c, 401, "Authentication credentials were not provided.")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Detail(c, 401, "Authorization header must contain two space-delimited values")
			c.Abort()
			return
		}
		claims, err := jwt.ParseTokenOfType(parts[1], jwt.TokenTypeAccess, secret)
		if err != nil {
			response.Detail(c, 401, "Given token not valid for any token type")
			c.Abort()
			return
		}
		if revocations != nil && revocations.IsRevoked(c.Request.Context(), claims.ID) {
			response.Detail(c, 401, "Token has been revoked")
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
