package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/internal/domain/dto"
	"github.com/soundhaus/locale-service/internal/domain/model"
	"github.com/soundhaus/locale-service/internal/i18n"
	"github.com/soundhaus/locale-service/internal/repository"
	"github.com/soundhaus/locale-service/internal/service"
)

// AdminHandler provides HTTP handlers for the admin routes.
type AdminHandler struct {
	engine    *i18n.Engine
	bundles   *repository.BundlesRepositoryWithCircuitBreaker
	reporting service.ReportingService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(engine *i18n.Engine, bundles *repository.BundlesRepositoryWithCircuitBreaker, reporting service.ReportingService) *AdminHandler {
	return &AdminHandler{
		engine:    engine,
		bundles:   bundles,
		reporting: reporting,
	}
}

// UpsertBundle handles PUT /api/admin/bundles/:locale requests.
//
// @Summary      Replace a locale's bundle
// @Description  Stores the locale's translation bundle and reloads the engine's tree for that locale, making the new strings immediately visible to resolution.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        locale path string true "Locale code"
// @Param        request body dto.UpsertBundleRequest true "Nested translation document"
// @Success      200 {object} dto.SuccessResponse "Stored bundle"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Unsupported locale"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/bundles/{locale} [put]
func (h *AdminHandler) UpsertBundle(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)

	locale := i18n.NormalizeCode(c.Param("locale"))
	if !h.engine.IsSupported(locale) {
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeUnsupportedLocale, i18n.ErrKeyUnsupportedLocale, nil)
		return
	}

	var req dto.UpsertBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	// Reject documents the engine could not parse before storing them.
	if _, err := model.TreeFromMap(req.Data); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	doc, err := h.bundles.Upsert(c.Request.Context(), locale, req.Data, req.UpdatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}

	if err := h.engine.ReloadLocale(c.Request.Context(), locale); err != nil {
		// The bundle is stored; the resident tree just could not be
		// replaced yet. Report but do not fail the request.
		_ = h.reporting.Record(c.Request.Context(), model.NewEvent(model.EventBundleLoadFailure).
			WithLocale(locale).
			WithMessage("reload after upsert failed").
			WithError(err))
	}

	builder.SuccessOK(dto.BundleResponse{
		Locale:    doc.Locale,
		Data:      doc.Data,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
		UpdatedBy: doc.UpdatedBy,
	})
}

// GetBundle handles GET /api/admin/bundles/:locale requests.
//
// @Summary      Fetch a locale's stored bundle
// @Tags         Admin
// @Produce      json
// @Param        locale path string true "Locale code"
// @Success      200 {object} dto.SuccessResponse "Stored bundle"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "No bundle stored"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/bundles/{locale} [get]
func (h *AdminHandler) GetBundle(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)

	locale := i18n.NormalizeCode(c.Param("locale"))
	doc, err := h.bundles.Get(c.Request.Context(), locale)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if doc == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(dto.BundleResponse{
		Locale:    doc.Locale,
		Data:      doc.Data,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
		UpdatedBy: doc.UpdatedBy,
	})
}

// QueryEvents handles GET /api/admin/events requests.
//
// @Summary      Query recorded events
// @Description  Returns recorded engine and HTTP events, newest first. Filters: type, locale, since, until (RFC 3339), limit, offset.
// @Tags         Admin
// @Produce      json
// @Param        type query string false "Event type"
// @Param        locale query string false "Locale code"
// @Param        since query string false "RFC 3339 lower bound"
// @Param        until query string false "RFC 3339 upper bound"
// @Param        limit query int false "Page size (default 50)"
// @Param        offset query int false "Page offset"
// @Success      200 {object} dto.SuccessResponse "Event page"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filters"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/events [get]
func (h *AdminHandler) QueryEvents(c *gin.Context) {
	builder := NewResponseBuilder(c, h.engine)

	opts := model.EventQueryOptions{
		Type:   c.Query("type"),
		Locale: i18n.NormalizeCode(c.Query("locale")),
		Limit:  50,
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		opts.Limit = limit
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		opts.Offset = offset
	}
	if v := c.Query("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		opts.Since = t
	}
	if v := c.Query("until"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		opts.Until = t
	}

	events, err := h.reporting.Query(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	total, err := h.reporting.Count(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}

	builder.SuccessOK(dto.EventsResponse{Events: events, Total: total})
}
