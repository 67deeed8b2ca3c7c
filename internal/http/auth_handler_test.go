package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soundhaus/locale-service/config"
	"github.com/soundhaus/locale-service/internal/middleware"
	"github.com/soundhaus/locale-service/internal/service"
)

// newAuthRouter registers the token route the way the production router
// does: APIKeyAuth middleware in front of the issue handler.
func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("studio-admin-key"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AuthConfig{
		Enabled:         true,
		AdminAPIKeyHash: string(hash),
		JWTSecretKey:    "test-secret-key-for-auth-handler",
		AccessTokenTTL:  15 * time.Minute,
	}

	engine := newTestEngine(t)
	handler := NewAuthHandler(engine, service.NewTokenService(cfg))

	router := gin.New()
	router.POST("/api/auth/token",
		middleware.APIKeyAuth(service.NewAuthService(cfg), engine),
		handler.IssueToken)
	return router
}

func TestAuthHandler_IssueToken(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("valid key issues a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/token", nil)
		req.Header.Set("X-API-Key", "studio-admin-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataField(t, w)
		assert.NotEmpty(t, data["access_token"])
		assert.Equal(t, "Bearer", data["token_type"])
		assert.Equal(t, float64(900), data["expires_in"])
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/token", nil)
		req.Header.Set("X-API-Key", "not-the-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
