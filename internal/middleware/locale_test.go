package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLocale(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header uses active locale", header: "", expected: "en"},
		{name: "supported header locale", header: "es", expected: "es"},
		{name: "regional tag maps to base", header: "es-MX,es;q=0.9", expected: "es"},
		{name: "unsupported header falls back to default", header: "ja-JP", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Locale(engine))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetLocale(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestTranslate_FollowsRequestLocale(t *testing.T) {
	engine := newTestEngine(t)

	router := gin.New()
	router.Use(Locale(engine))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, Translate(engine, c, "error.internal"))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Language", "es")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "Algo salió mal. Inténtalo de nuevo.", w.Body.String())
}

func TestGetLocale_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetLocale(c))
}
