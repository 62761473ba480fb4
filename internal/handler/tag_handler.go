package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "notesapi/internal/pkg/errors"
	"notesapi/internal/pkg/response"
	"notesapi/internal/service"
)

type TagHandler struct {
	tags *service.TagService
}

func NewTagHandler(tags *service.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

type tagRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}

func (h *TagHandler) Create(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrors(c, err)
		return
	}
	tag, err := h.tags.Create(c.Request.Context(), getUserID(c), req.Name)
	if err != nil {
		if appErr.IsConflict(err) {
			response.FieldError(c, "name", "Tag with this name already exists for this user.")
			return
		}
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, tag)
}

func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tags)
}

func (h *TagHandler) Delete(c *gin.Context) {
	if err := h.tags.Delete(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
