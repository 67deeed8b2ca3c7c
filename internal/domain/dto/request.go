// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strings"

// TranslateRequest represents the JSON request body for the translate endpoint.
//
// The Key field is required. Locale is optional and overrides the active
// locale for this request only. Params are substituted into {{ name }}
// placeholders of the resolved template.
//
// @Description Request to resolve a translation key to a localized message
// @Example {"key": "studio.booking.confirmed", "params": {"name": "Aria"}}
type TranslateRequest struct {
	// Key is the dotted translation key to resolve.
	Key string `json:"key" binding:"required" example:"studio.booking.confirmed"`
	// Locale optionally overrides the active locale for this lookup.
	Locale string `json:"locale,omitempty" example:"pt"`
	// Params holds values substituted into {{ name }} placeholders.
	Params map[string]string `json:"params,omitempty"`
} // @name TranslateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrEmptyKey is returned when the translation key is blank.
	ErrEmptyKey = &ValidationError{
		Field:   "key",
		Message: "must be a non-empty dotted key",
	}
	// ErrEmptyLocaleCode is returned when a locale code is blank.
	ErrEmptyLocaleCode = &ValidationError{
		Field:   "code",
		Message: "must be a non-empty locale code",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *TranslateRequest) Validate() error {
	if strings.TrimSpace(r.Key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// SwitchLocaleRequest represents the JSON request body for switching the
// active locale.
type SwitchLocaleRequest struct {
	// Code is the locale code to switch to.
	Code string `json:"code" binding:"required" example:"pt"`
} // @name SwitchLocaleRequest

// Validate performs custom validation on the request.
func (r *SwitchLocaleRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return ErrEmptyLocaleCode
	}
	return nil
}

// UpsertBundleRequest represents the JSON request body for replacing a
// locale's translation bundle.
type UpsertBundleRequest struct {
	// Data is the nested translation document for the locale.
	Data map[string]interface{} `json:"data" binding:"required"`
	// UpdatedBy is the identifier of who submitted the bundle.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpsertBundleRequest
