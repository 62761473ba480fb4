package middleware

import "github.com/gin-gonic/gin"

const AccessTokenCookie = "access_token"

// CookieToHeader bridges cookie-based clients onto standard bearer
// auth: when an access_token cookie is present and the request carries
// no Authorization header, the header is synthesized from the cookie.
// The request is always forwarded.
func CookieToHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
				c.Request.Header.Set("Authorization", "Bearer "+token)
			}
		}
		c.Next()
	}
}
