package model

import "time"

const (
	// EventLocaleSwitch records a completed locale switch.
	EventLocaleSwitch = "locale_switch"
	// EventMissingKey records a translation key that resolved to its literal key.
	EventMissingKey = "missing_key"
	// EventBundleLoadFailure records a bundle fetch or parse failure.
	EventBundleLoadFailure = "bundle_load_failure"
	// EventHTTPRequest records a summary of a handled HTTP request.
	EventHTTPRequest = "http_request"
)

// Event is a single reportable occurrence inside the engine or the HTTP layer.
type Event struct {
	ID        string                 `json:"id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Type      string                 `json:"type"`
	Locale    string                 `json:"locale,omitempty"`
	Key       string                 `json:"key,omitempty"`
	Message   string                 `json:"message,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// NewEvent creates an event of the given type stamped with the current time.
func NewEvent(eventType string) *Event {
	return &Event{
		Timestamp: time.Now(),
		Type:      eventType,
	}
}

// WithLocale sets the locale the event refers to.
func (e *Event) WithLocale(code string) *Event {
	e.Locale = code
	return e
}

// WithKey sets the translation key the event refers to.
func (e *Event) WithKey(key string) *Event {
	e.Key = key
	return e
}

// WithMessage sets a human-readable description.
func (e *Event) WithMessage(msg string) *Event {
	e.Message = msg
	return e
}

// WithError records the underlying error text.
func (e *Event) WithError(err error) *Event {
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithField attaches one structured field to the event.
func (e *Event) WithField(key string, value interface{}) *Event {
	if e.Fields == nil {
		e.Fields = map[string]interface{}{}
	}
	e.Fields[key] = value
	return e
}

// EventQueryOptions filters event queries.
type EventQueryOptions struct {
	Type   string
	Locale string
	Since  time.Time
	Until  time.Time
	Limit  int
	Offset int
}
