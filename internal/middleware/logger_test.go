package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhub/internal/logger"
)

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromGin, fromCtx string
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		fromGin = c.GetString("request_id")
		fromCtx = logger.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	require.NotEmpty(t, fromGin)
	// The request context must carry the same id the handler sees,
	// otherwise logger.WithContext in services emits nothing.
	assert.Equal(t, fromGin, fromCtx)
	assert.Equal(t, fromGin, w.Header().Get("X-Request-ID"))
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromCtx string
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		fromCtx = logger.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", fromCtx)
}
