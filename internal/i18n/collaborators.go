// Package i18n implements locale resolution and translation for the site:
// a registry of supported locales, startup locale detection, lazily loaded
// translation trees with fallback, dotted-key resolution with placeholder
// interpolation, and a guarded locale switcher.
package i18n

import (
	"context"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

// ContentFetcher retrieves the raw translation document for a locale.
// Implementations may read from a database, the filesystem, or a remote
// service; the store treats any error or malformed payload as recoverable.
type ContentFetcher interface {
	FetchLocale(ctx context.Context, code string) ([]byte, error)
}

// PreferenceStore persists the visitor's explicit locale choice across
// sessions. Preference reports false when no choice has been stored.
type PreferenceStore interface {
	Preference() (string, bool)
	SetPreference(code string) error
}

// SiteURL exposes the canonical site URL state the engine reads during
// detection and rewrites after a switch.
type SiteURL interface {
	// Path returns the current URL path, beginning with "/".
	Path() string
	// Query returns the value of the named query parameter, or "".
	Query(name string) string
	// ReplacePath swaps the URL path without reloading anything.
	ReplacePath(path string)
}

// LanguageSource reports the visitor's preferred languages in priority
// order, as full tags (e.g. "pt-BR").
type LanguageSource interface {
	Languages() []string
}

// Change describes a completed locale switch, delivered once per switch to
// every registered listener.
type Change struct {
	Code      string
	Config    model.LocaleConfig
	Direction model.Direction
}

// ChangeListener receives locale change notifications.
type ChangeListener func(Change)
