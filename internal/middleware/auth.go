package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/internal/domain/dto"
	"github.com/soundhaus/locale-service/internal/i18n"
	"github.com/soundhaus/locale-service/internal/service"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
)

// APIKeyAuth returns a middleware that validates the admin API key via the
// auth service's bcrypt hash comparison.
func APIKeyAuth(authService service.AuthService, engine *i18n.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, Translate(engine, c, i18n.ErrKeyUnauthorized)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		if err := authService.VerifyAPIKey(key); err != nil {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, Translate(engine, c, i18n.ErrKeyUnauthorized)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Next()
	}
}
