package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "notesapi/internal/pkg/errors"
	"notesapi/internal/pkg/response"
	"notesapi/internal/service"
)

type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteRequest struct {
	Title   string    `json:"title" binding:"required,max=200"`
	Content string    `json:"content"`
	Tags    *[]string `json:"tags"`
}

type notePatchRequest struct {
	Title   *string   `json:"title" binding:"omitempty,max=200"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

func tagsOf(tags *[]string) []string {
	if tags == nil {
		return nil
	}
	return *tags
}

func handleNoteError(c *gin.Context, err error) {
	if err == appErr.ErrInvalid {
		response.FieldError(c, "tags", "Tag does not belong to the requesting user.")
		return
	}
	handleError(c, err)
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrors(c, err)
		return
	}
	note, err := h.notes.Create(c.Request.Context(), getUserID(c), service.NoteCreateInput{
		Title:   req.Title,
		Content: req.Content,
		TagIDs:  tagsOf(req.Tags),
	})
	if err != nil {
		handleNoteError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, note)
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), getUserID(c), c.Query("tag"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notes)
}

func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.notes.Get(c.Request.Context(), getUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrors(c, err)
		return
	}
	note, err := h.notes.Update(c.Request.Context(), getUserID(c), c.Param("id"), service.NoteCreateInput{
		Title:   req.Title,
		Content: req.Content,
		TagIDs:  tagsOf(req.Tags),
	})
	if err != nil {
		handleNoteError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, note)
}

func (h *NoteHandler) Patch(c *gin.Context) {
	var req notePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrors(c, err)
		return
	}
	note, err := h.notes.Patch(c.Request.Context(), getUserID(c), c.Param("id"), service.NotePatchInput{
		Title:   req.Title,
		Content: req.Content,
		TagIDs:  req.Tags,
	})
	if err != nil {
		handleNoteError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.notes.Delete(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
