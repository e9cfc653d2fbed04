// Package response renders the JSON envelope every endpoint answers
// with: {"success": true, "data": ...} or {"success": false, "error": ...}.
package response

import "github.com/gin-gonic/gin"

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, envelope{
		Success: false,
		Error:   &errorBody{Code: code, Message: message},
	})
}

// ErrorWithDetails is Error plus a free-form details payload, used for
// validation failures where the client needs to know which field broke.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, envelope{
		Success: false,
		Error:   &errorBody{Code: code, Message: message, Details: details},
	})
}
