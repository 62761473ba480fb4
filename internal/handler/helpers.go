package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"notesapi/internal/middleware"
	appErr "notesapi/internal/pkg/errors"
	"notesapi/internal/pkg/response"
)

func getUserID(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(string)
	return userID
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("user_id", getUserID(c)),
		zap.Error(err),
	)
	switch {
	case appErr.IsNotFound(err):
		response.Detail(c, http.StatusNotFound, "Not found.")
	case err == appErr.ErrUnauthorized:
		response.Detail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
	case err == appErr.ErrForbidden:
		response.Detail(c, http.StatusForbidden, "You do not have permission to perform this action.")
	case err == appErr.ErrInvalid:
		response.Detail(c, http.StatusBadRequest, "Invalid request.")
	case appErr.IsConflict(err):
		response.Detail(c, http.StatusConflict, "Conflict.")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error.")
	}
}

// bindingErrors translates gin/validator binding failures into a
// field -> messages object.
func bindingErrors(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			fields[field] = append(fields[field], validationMessage(fe))
		}
		response.FieldErrors(c, fields)
		return
	}
	response.Detail(c, http.StatusBadRequest, "Malformed request body.")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	default:
		return "This field is invalid."
	}
}
