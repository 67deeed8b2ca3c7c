package dto

import (
	"net/http"
	"time"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnsupportedLocale indicates a locale code outside the registry.
	ErrCodeUnsupportedLocale = "unsupported_locale"
	// ErrCodeSwitchInProgress indicates a locale switch is already running.
	ErrCodeSwitchInProgress = "switch_in_progress"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"key: must be a non-empty dotted key"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// TranslationResponse is the result of resolving a translation key.
// @Description Resolved translation
type TranslationResponse struct {
	Key    string `json:"key" example:"studio.booking.confirmed"`
	Locale string `json:"locale" example:"pt"`
	// Message is the resolved, interpolated text.
	Message string `json:"message" example:"Reserva confirmada, Aria!"`
	// Source reports where the template came from: active, fallback, or miss.
	Source string `json:"source" example:"active"`
} // @name TranslationResponse

// LocaleStateResponse describes the engine's current locale state.
// @Description Active locale state
type LocaleStateResponse struct {
	Code      string          `json:"code" example:"pt"`
	Direction model.Direction `json:"direction" example:"ltr"`
	// SitePath is the canonical localized site path.
	SitePath string `json:"site_path" example:"/pt/studios"`
} // @name LocaleStateResponse

// LocalesResponse lists the enabled locales and the active one.
// @Description Enabled locale catalog
type LocalesResponse struct {
	Active  string               `json:"active" example:"en"`
	Locales []model.LocaleConfig `json:"locales"`
} // @name LocalesResponse

// SwitchResultResponse describes the outcome of a locale switch.
// @Description Locale switch outcome
type SwitchResultResponse struct {
	Switched  bool            `json:"switched"`
	Code      string          `json:"code" example:"pt"`
	Config    interface{}     `json:"config,omitempty"`
	Direction model.Direction `json:"direction,omitempty" example:"ltr"`
	SitePath  string          `json:"site_path,omitempty" example:"/pt/studios"`
} // @name SwitchResultResponse

// BundleResponse is a stored translation bundle.
// @Description Stored locale bundle
type BundleResponse struct {
	Locale    string                 `json:"locale" example:"pt"`
	Data      map[string]interface{} `json:"data"`
	Version   int64                  `json:"version" example:"3"`
	UpdatedAt time.Time              `json:"updated_at"`
	UpdatedBy string                 `json:"updated_by,omitempty"`
} // @name BundleResponse

// EventsResponse is a page of recorded events.
// @Description Recorded event page
type EventsResponse struct {
	Events []model.Event `json:"events"`
	Total  int64         `json:"total" example:"42"`
} // @name EventsResponse

// TokenResponse carries an issued access token.
// @Description Issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"900"`
} // @name TokenResponse
