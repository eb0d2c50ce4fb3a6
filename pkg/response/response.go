package response

import (
	"github.com/gin-gonic/gin"
)

// Paging describes the page of a list response.
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// Data writes a {data: ...} envelope. Empty lists stay as [] on the wire, so
// no struct with omitempty here.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// DataWithPaging writes a {data: ..., paging: ...} envelope for list endpoints.
func DataWithPaging(c *gin.Context, status int, data any, paging Paging) {
	c.JSON(status, gin.H{"data": data, "paging": paging})
}

// Errors writes a {errors: ...} envelope. errs is either a plain message or a
// map of field errors for validation failures.
func Errors(c *gin.Context, status int, errs any) {
	c.JSON(status, gin.H{"errors": errs})
}

// AbortErrors writes a {errors: ...} envelope and stops the handler chain.
func AbortErrors(c *gin.Context, status int, errs any) {
	c.AbortWithStatusJSON(status, gin.H{"errors": errs})
}
