package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the unified API response format. Every endpoint returns
// either {success: true, data: ...} or {success: false, error: "..."}.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	ID      *uint       `json:"id,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a 200 OK response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OK sends a bare 200 OK success response with no data payload.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Success: true})
}

// CreatedID sends a 201 Created response carrying the new record's id.
func CreatedID(c *gin.Context, id uint) {
	c.JSON(http.StatusCreated, Envelope{Success: true, ID: &id})
}

// Error response functions; each maps to one slot in the endpoint
// error taxonomy (validation, missing record, everything else)

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Envelope{Success: false, Error: msg})
}

func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: msg})
}
