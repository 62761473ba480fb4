package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "notesapi/internal/pkg/errors"
	"notesapi/internal/pkg/response"
	"notesapi/internal/service"
)

type AuthHandler struct {
	auth    *service.AuthService
	cookies *CookieWriter
}

func NewAuthHandler(auth *service.AuthService, cookies *CookieWriter) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrors(c, err)
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if appErr.IsConflict(err) {
			response.FieldError(c, "username", "A user with that username already exists.")
			return
		}
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}

// Login issues both tokens as HttpOnly cookies. Raw token values never
// appear in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrors(c, err)
		return
	}
	_, pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == appErr.ErrUnauthorized {
			response.Detail(c, http.StatusUnauthorized, "No active account found with the given credentials")
			return
		}
		handleError(c, err)
		return
	}
	h.cookies.SetAccess(c, pair.Access)
	h.cookies.SetRefresh(c, pair.Refresh)
	response.Detail(c, http.StatusOK, "logged_in")
}

// Refresh reads the refresh token from its cookie only, mints a new
// access token and re-sets the access cookie. The refresh cookie is
// deliberately left untouched.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(refreshTokenCookie)
	if err != nil || refresh == "" {
		response.Detail(c, http.StatusUnauthorized, "No refresh token")
		return
	}
	access, err := h.auth.Refresh(c.Request.Context(), refresh)
	if err != nil {
		if err == appErr.ErrUnauthorized {
			response.Detail(c, http.StatusUnauthorized, "Token is invalid or expired")
			return
		}
		response.Detail(c, http.StatusBadRequest, "No access token returned")
		return
	}
	h.cookies.SetAccess(c, access)
	response.Detail(c, http.StatusOK, "refreshed")
}

// Logout is an open endpoint: it always clears both cookies and
// reports success. Tokens found in the cookies are revoked server-side
// on a best-effort basis.
func (h *AuthHandler) Logout(c *gin.Context) {
	if access, err := c.Cookie(accessTokenCookie); err == nil {
		h.auth.RevokeToken(c.Request.Context(), access)
	}
	if refresh, err := c.Cookie(refreshTokenCookie); err == nil {
		h.auth.RevokeToken(c.Request.Context(), refresh)
	}
	h.cookies.Clear(c)
	response.Detail(c, http.StatusOK, "logged_out")
}
