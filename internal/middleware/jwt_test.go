package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhaus/locale-service/config"
	"github.com/soundhaus/locale-service/internal/service"
)

func TestJWTAuth(t *testing.T) {
	engine := newTestEngine(t)
	tokens := service.NewTokenService(config.AuthConfig{
		JWTSecretKey:   "test-secret",
		AccessTokenTTL: time.Minute,
	})

	router := gin.New()
	router.Use(JWTAuth(tokens, engine))
	router.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject": c.GetString("subject"),
			"scope":   c.GetString("scope"),
		})
	})

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		token, _, err := tokens.IssueAdminToken("admin")
		require.NoError(t, err)

		w := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subject":"admin"`)
		assert.Contains(t, w.Body.String(), `"scope":"admin"`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthorized")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := do("Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty bearer token", func(t *testing.T) {
		w := do("Bearer ")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := do("Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
