package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notesapi/internal/pkg/response"
	"notesapi/internal/service"
)

type ExportHandler struct {
	export *service.ExportService
}

func NewExportHandler(export *service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

func (h *ExportHandler) Export(c *gin.Context) {
	payload, err := h.export.Export(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payload)
}

func (h *ExportHandler) Note(c *gin.Context) {
	body, contentType, err := h.export.RenderNote(c.Request.Context(), getUserID(c), c.Param("id"), c.Query("format"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, []byte(body))
}
