package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"notesapi/internal/middleware"
	"notesapi/internal/revoke"
)

type RouterDeps struct {
	Auth        *AuthHandler
	Notes       *NoteHandler
	Tags        *TagHandler
	Export      *ExportHandler
	JWTSecret   []byte
	Revocations *revoke.Store
	AuthWindow  time.Duration
}

// RegisterRoutes lays out the full HTTP surface as an explicit route
// table. Trailing slashes are part of the wire contract; gin redirects
// the bare forms.
func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.Use(middleware.CookieToHeader())

	authLimit := middleware.RateLimit(deps.AuthWindow)
	api.POST("/token/", authLimit, deps.Auth.Login)
	api.POST("/token/refresh/", deps.Auth.Refresh)
	api.POST("/auth/logout/", deps.Auth.Logout)
	api.POST("/auth/register/", authLimit, deps.Auth.Register)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret, deps.Revocations))
	authGroup.GET("/notes/", deps.Notes.List)
	authGroup.POST("/notes/", deps.Notes.Create)
	authGroup.GET("/notes/:id/", deps.Notes.Get)
	authGroup.PUT("/notes/:id/", deps.Notes.Update)
	authGroup.PATCH("/notes/:id/", deps.Notes.Patch)
	authGroup.DELETE("/notes/:id/", deps.Notes.Delete)
	authGroup.GET("/notes/:id/export/", deps.Export.Note)

	authGroup.GET("/tags/", deps.Tags.List)
	authGroup.POST("/tags/", deps.Tags.Create)
	authGroup.DELETE("/tags/:id/", deps.Tags.Delete)

	authGroup.GET("/export/", deps.Export.Export)
}
