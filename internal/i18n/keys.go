package i18n

// Translation keys for the service's own error messages. The HTTP layer
// resolves these through the engine so error payloads follow the active
// locale.
const (
	// ErrKeyInternal is shown for unexpected server errors.
	ErrKeyInternal = "error.internal"
	// ErrKeyInvalidRequest is shown for malformed requests.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyUnauthorized is shown when authentication is missing or invalid.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyForbidden is shown when access is denied.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound is shown when a resource does not exist.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimit is shown when the rate limit is exceeded.
	ErrKeyRateLimit = "error.rate_limit"
	// ErrKeyTimeout is shown when a request times out.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyUnsupportedLocale is shown for locale codes outside the registry.
	ErrKeyUnsupportedLocale = "error.unsupported_locale"
	// ErrKeySwitchInProgress is shown when a switch is already running.
	ErrKeySwitchInProgress = "error.switch_in_progress"
)
