package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/internal/domain/dto"
	"github.com/soundhaus/locale-service/internal/i18n"
)

// Handler provides HTTP handlers for the public locale routes.
type Handler struct {
	engine *i18n.Engine
}

// NewHandler creates a new Handler instance.
func NewHandler(engine *i18n.Engine) *Handler {
	return &Handler{engine: engine}
}

// Translate handles POST /api/translate requests.
//
// @Summary      Resolve a translation key
// @Description  Resolves a dotted translation key to a localized message. Lookups walk the active locale's tree, fall back to the default locale, and finally return the literal key. Placeholders of the form {{ name }} are substituted from params; unmatched placeholders are left verbatim.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        request body dto.TranslateRequest true "Key, optional locale override, optional params"
// @Success      200 {object} dto.SuccessResponse "Resolved translation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/translate [post]
func (h *Handler) Translate(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)

	var req dto.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = h.engine.ActiveLocale()
	} else if !h.engine.IsSupported(locale) {
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeUnsupportedLocale, i18n.ErrKeyUnsupportedLocale, nil)
		return
	}

	message, source := h.engine.ResolveIn(locale, req.Key, req.Params)
	builder.SuccessOK(dto.TranslationResponse{
		Key:     req.Key,
		Locale:  i18n.NormalizeCode(locale),
		Message: message,
		Source:  source,
	})
}

// GetLocales handles GET /api/locales requests.
//
// @Summary      List enabled locales
// @Description  Returns the enabled locale catalog in registration order, plus the active locale code.
// @Tags         Locales
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Enabled locales"
// @Router       /api/locales [get]
func (h *Handler) GetLocales(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)
	builder.SuccessOK(dto.LocalesResponse{
		Active:  h.engine.ActiveLocale(),
		Locales: h.engine.SupportedLocales(),
	})
}

// GetLocale handles GET /api/locale requests.
//
// @Summary      Get the active locale
// @Description  Returns the active locale code, its text direction, and the canonical localized site path.
// @Tags         Locales
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active locale state"
// @Router       /api/locale [get]
func (h *Handler) GetLocale(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)
	builder.SuccessOK(dto.LocaleStateResponse{
		Code:      h.engine.ActiveLocale(),
		Direction: h.engine.Direction(),
		SitePath:  h.engine.SitePath(),
	})
}

// SwitchLocale handles PUT /api/locale requests.
//
// @Summary      Switch the active locale
// @Description  Drives the locale switcher. Returns the change payload on success, a no-op result when the code is already active, 404 for unsupported codes, and 409 while another switch is in flight.
// @Tags         Locales
// @Accept       json
// @Produce      json
// @Param        request body dto.SwitchLocaleRequest true "Target locale code"
// @Success      200 {object} dto.SuccessResponse "Switch outcome"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unsupported locale"
// @Failure      409 {object} dto.ErrorResponse "A switch is already in progress"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/locale [put]
func (h *Handler) SwitchLocale(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)

	var req dto.SwitchLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	code := i18n.NormalizeCode(req.Code)
	if !h.engine.IsSupported(code) {
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeUnsupportedLocale, i18n.ErrKeyUnsupportedLocale, nil)
		return
	}

	if code == h.engine.ActiveLocale() {
		builder.SuccessOK(dto.SwitchResultResponse{
			Switched: false,
			Code:     code,
			SitePath: h.engine.SitePath(),
		})
		return
	}

	switched, err := h.engine.SwitchTo(c.Request.Context(), code)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if !switched {
		// Supported, not active, yet not switched: another switch is
		// holding the guard (or just completed the same change).
		if h.engine.ActiveLocale() == code {
			builder.SuccessOK(dto.SwitchResultResponse{
				Switched: false,
				Code:     code,
				SitePath: h.engine.SitePath(),
			})
			return
		}
		builder.ErrorWithCode(http.StatusConflict, dto.ErrCodeSwitchInProgress, i18n.ErrKeySwitchInProgress, nil)
		return
	}

	cfg, _ := h.engine.LocaleConfig(code)
	builder.SuccessOK(dto.SwitchResultResponse{
		Switched:  true,
		Code:      code,
		Config:    cfg,
		Direction: h.engine.Direction(),
		SitePath:  h.engine.SitePath(),
	})
}
