package i18n

import (
	"fmt"
	"strings"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

// Registry is the static catalog of locales the site can render in.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	defaultCode string
	order       []string
	byCode      map[string]model.LocaleConfig
}

// NewRegistry builds a registry from the given locale table. Codes must be
// unique, and the default locale must be present and enabled.
func NewRegistry(defaultCode string, locales []model.LocaleConfig) (*Registry, error) {
	defaultCode = NormalizeCode(defaultCode)
	if defaultCode == "" {
		return nil, fmt.Errorf("default locale code is empty")
	}

	byCode := make(map[string]model.LocaleConfig, len(locales))
	order := make([]string, 0, len(locales))
	for _, lc := range locales {
		code := NormalizeCode(lc.Code)
		if code == "" {
			return nil, fmt.Errorf("locale with empty code")
		}
		if _, dup := byCode[code]; dup {
			return nil, fmt.Errorf("duplicate locale code %q", code)
		}
		lc.Code = code
		byCode[code] = lc
		order = append(order, code)
	}

	def, ok := byCode[defaultCode]
	if !ok {
		return nil, fmt.Errorf("default locale %q is not in the registry", defaultCode)
	}
	if !def.Enabled {
		return nil, fmt.Errorf("default locale %q is disabled", defaultCode)
	}

	return &Registry{
		defaultCode: defaultCode,
		order:       order,
		byCode:      byCode,
	}, nil
}

// DefaultCode returns the registry's default locale code.
func (r *Registry) DefaultCode() string {
	return r.defaultCode
}

// ListEnabled returns the enabled locales in registration order.
func (r *Registry) ListEnabled() []model.LocaleConfig {
	out := make([]model.LocaleConfig, 0, len(r.order))
	for _, code := range r.order {
		if lc := r.byCode[code]; lc.Enabled {
			out = append(out, lc)
		}
	}
	return out
}

// Get returns the configuration for a code. It reports false for unknown
// or disabled locales.
func (r *Registry) Get(code string) (model.LocaleConfig, bool) {
	lc, ok := r.byCode[NormalizeCode(code)]
	if !ok || !lc.Enabled {
		return model.LocaleConfig{}, false
	}
	return lc, true
}

// IsSupported reports whether the code names an enabled locale.
func (r *Registry) IsSupported(code string) bool {
	_, ok := r.Get(code)
	return ok
}

// NormalizeCode lowercases and trims a locale code.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// BaseSubtag returns the primary language subtag of a language tag:
// "pt-BR" and "pt_BR" both yield "pt".
func BaseSubtag(tag string) string {
	tag = NormalizeCode(tag)
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// DefaultLocales returns the built-in locale table for the site.
func DefaultLocales() []model.LocaleConfig {
	return []model.LocaleConfig{
		{Code: "en", DisplayName: "English", NativeName: "English", Direction: model.DirectionLTR, DateFormat: "01/02/2006", CurrencyCode: "USD", Enabled: true},
		{Code: "es", DisplayName: "Spanish", NativeName: "Español", Direction: model.DirectionLTR, DateFormat: "02/01/2006", CurrencyCode: "EUR", Enabled: true},
		{Code: "fr", DisplayName: "French", NativeName: "Français", Direction: model.DirectionLTR, DateFormat: "02/01/2006", CurrencyCode: "EUR", Enabled: true},
		{Code: "de", DisplayName: "German", NativeName: "Deutsch", Direction: model.DirectionLTR, DateFormat: "02.01.2006", CurrencyCode: "EUR", Enabled: true},
		{Code: "pt", DisplayName: "Portuguese", NativeName: "Português", Direction: model.DirectionLTR, DateFormat: "02/01/2006", CurrencyCode: "BRL", Enabled: true},
		{Code: "ar", DisplayName: "Arabic", NativeName: "العربية", Direction: model.DirectionRTL, DateFormat: "02/01/2006", CurrencyCode: "AED", Enabled: true},
	}
}

// LocalesFromCodes filters the built-in table down to the given codes,
// preserving the table's order. Unknown codes are ignored. An empty list
// returns the full table.
func LocalesFromCodes(codes []string) []model.LocaleConfig {
	all := DefaultLocales()
	if len(codes) == 0 {
		return all
	}
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[NormalizeCode(c)] = true
	}
	out := make([]model.LocaleConfig, 0, len(codes))
	for _, lc := range all {
		if want[lc.Code] {
			out = append(out, lc)
		}
	}
	return out
}
