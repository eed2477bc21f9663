//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cellar-shop/internal/domain/user"
	"cellar-shop/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "info", Format: "json", TimeFormat: "2006-01-02", TimeZone: "UTC"}, &buf)

	userID := uuid.New()
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/api/cart", func(c *gin.Context) {
		setIdentity(c, userID, user.RoleCustomer)
		c.Status(http.StatusConflict)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(requestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(requestIDHeader))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug start line is filtered at info")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "/api/cart", entry["route"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Equal(t, "customer", entry["role"])
	assert.Equal(t, "cellar-shop", entry["service"])
}

func TestLoggingMiddleware_MintsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := newLogger(config.LogConfig{Format: "text"}, &bytes.Buffer{})

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(requestIDHeader))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "ERROR", parseLevel("ERROR").String())
	assert.Equal(t, "INFO", parseLevel("verbose").String())
}
