package response

import "github.com/gin-gonic/gin"

// Entities and arrays are returned bare, status messages as
// {"detail": ...} and validation failures as a field -> messages
// object.

func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func FieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(400, fields)
}

func FieldError(c *gin.Context, field, message string) {
	FieldErrors(c, map[string][]string{field: {message}})
}
