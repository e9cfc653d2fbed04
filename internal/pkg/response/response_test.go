package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(c *gin.Context)) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSuccess(t *testing.T) {
	code, body := record(t, func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": float64(1)}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestError(t *testing.T) {
	code, body := record(t, func(c *gin.Context) {
		Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	})

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
	assert.Equal(t, "Hotel not found", errBody["message"])
	assert.NotContains(t, errBody, "details")
}

func TestErrorWithDetails(t *testing.T) {
	_, body := record(t, func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", "name is required")
	})

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "name is required", errBody["details"])
}
