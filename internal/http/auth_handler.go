package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/internal/domain/dto"
	"github.com/soundhaus/locale-service/internal/i18n"
	"github.com/soundhaus/locale-service/internal/service"
)

// AuthHandler exchanges the admin API key for a short-lived access token.
// Key verification happens in the APIKeyAuth middleware guarding the route.
type AuthHandler struct {
	engine *i18n.Engine
	tokens service.TokenService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(engine *i18n.Engine, tokens service.TokenService) *AuthHandler {
	return &AuthHandler{
		engine: engine,
		tokens: tokens,
	}
}

// IssueToken handles POST /api/auth/token requests.
//
// @Summary      Exchange an API key for an access token
// @Description  Issues a short-lived Bearer token for the admin endpoints. The admin API key is verified from the X-API-Key header before this handler runs.
// @Tags         Auth
// @Produce      json
// @Param        X-API-Key header string true "Admin API key"
// @Success      200 {object} dto.SuccessResponse "Issued token"
// @Failure      401 {object} dto.ErrorResponse "Invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)

	token, expiresIn, err := h.tokens.IssueAdminToken("admin")
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}

	builder.SuccessOK(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}
