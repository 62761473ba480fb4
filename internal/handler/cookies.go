package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
	cookiePath         = "/"
)

// CookieWriter centralizes the fixed cookie attributes: HttpOnly,
// SameSite=Lax, path-wide, max-age matching the token TTL. Secure is
// configuration-driven and should only be off for non-TLS dev setups.
type CookieWriter struct {
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCookieWriter(secure bool, accessTTL, refreshTTL time.Duration) *CookieWriter {
	return &CookieWriter{secure: secure, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (w *CookieWriter) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, cookiePath, "", w.secure, true)
}

func (w *CookieWriter) SetAccess(c *gin.Context, token string) {
	w.set(c, accessTokenCookie, token, int(w.accessTTL.Seconds()))
}

func (w *CookieWriter) SetRefresh(c *gin.Context, token string) {
	w.set(c, refreshTokenCookie, token, int(w.refreshTTL.Seconds()))
}

func (w *CookieWriter) Clear(c *gin.Context) {
	w.set(c, accessTokenCookie, "", -1)
	w.set(c, refreshTokenCookie, "", -1)
}
