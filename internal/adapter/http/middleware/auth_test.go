package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireBearer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(expected string) *gin.Engine {
		r := gin.New()
		r.Use(RequireBearer(expected))
		r.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tenant": Tenant(c)})
		})
		return r
	}

	t.Run("empty expected token disables the check", func(t *testing.T) {
		r := newRouter("")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		r := newRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		r := newRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("matching token passes", func(t *testing.T) {
		r := newRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("tenant header is plumbed through", func(t *testing.T) {
		r := newRouter("")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-Id", "acme")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != `{"tenant":"acme"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}

		req2 := httptest.NewRequest(http.MethodGet, "/", nil)
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, req2)

		if w2.Body.String() != `{"tenant":"default"}` {
			t.Fatalf("unexpected body: %s", w2.Body.String())
		}
	})
}
