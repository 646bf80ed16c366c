package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("RecoversFromPanicAndReturns500", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery(logger))
		router.GET("/panic", func(c *gin.Context) {
			panic("something broke")
		})

		req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		errInfo, ok := body["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", errInfo["code"])
	})

	t.Run("IncludesCorrelationIDWhenPresent", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		router.Use(Recovery(logger))
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})

		providedID := uuid.New().String()
		req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
		req.Header.Set(CorrelationIDHeader, providedID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, providedID, body["correlation_id"])
	})

	t.Run("PassesThroughWithoutPanic", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery(logger))
		router.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
