package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAuthRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(apiKey))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestAPIKeyAuth(t *testing.T) {
	t.Run("open_when_no_key_configured", func(t *testing.T) {
		r := setupAuthRouter("")

		req := httptest.NewRequest("GET", "/ping", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("rejects_missing_key", func(t *testing.T) {
		r := setupAuthRouter("secret")

		req := httptest.NewRequest("GET", "/ping", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects_wrong_key", func(t *testing.T) {
		r := setupAuthRouter("secret")

		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("accepts_correct_key", func(t *testing.T) {
		r := setupAuthRouter("secret")

		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-API-Key", "secret")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
