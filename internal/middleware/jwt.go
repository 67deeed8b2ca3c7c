// Package middleware provides JWT authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/internal/domain/dto"
	"github.com/soundhaus/locale-service/internal/i18n"
	"github.com/soundhaus/locale-service/internal/service"
)

// JWTAuth returns a middleware that validates Bearer access tokens.
func JWTAuth(tokens service.TokenService, engine *i18n.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		unauthorized := func() {
			message := Translate(engine, c, i18n.ErrKeyUnauthorized)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized()
			return
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			unauthorized()
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("scope", claims.Scope)

		c.Next()
	}
}
