package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSite is a SiteURL stub with fixed path and query values.
type fakeSite struct {
	path  string
	query map[string]string
}

func (f *fakeSite) Path() string { return f.path }
func (f *fakeSite) Query(name string) string {
	return f.query[name]
}
func (f *fakeSite) ReplacePath(path string) { f.path = path }

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry("en", LocalesFromCodes([]string{"en", "es", "fr", "de", "ar"}))
	require.NoError(t, err)
	return registry
}

// TestDetector_Detect tests the detection precedence order.
func TestDetector_Detect(t *testing.T) {
	registry := testRegistry(t)

	tests := []struct {
		name       string
		site       SiteURL
		preference string
		languages  []string
		expected   string
	}{
		{
			name:       "query parameter wins over everything",
			site:       &fakeSite{path: "/fr/studio", query: map[string]string{"lang": "es"}},
			preference: "de",
			languages:  []string{"ar"},
			expected:   "es",
		},
		{
			name:     "unsupported query falls through to path",
			site:     &fakeSite{path: "/fr/studio", query: map[string]string{"lang": "ja"}},
			expected: "fr",
		},
		{
			name:       "path segment wins over preference",
			site:       &fakeSite{path: "/de/pricing"},
			preference: "es",
			expected:   "de",
		},
		{
			name:     "three letter path segment is not a locale",
			site:     &fakeSite{path: "/faq"},
			expected: "en",
		},
		{
			name:       "preference wins over languages",
			site:       &fakeSite{path: "/"},
			preference: "de",
			languages:  []string{"fr"},
			expected:   "de",
		},
		{
			name:       "unsupported preference falls through",
			site:       &fakeSite{path: "/"},
			preference: "ja",
			languages:  []string{"fr"},
			expected:   "fr",
		},
		{
			name:      "first supported language base subtag wins",
			site:      &fakeSite{path: "/"},
			languages: []string{"ja-JP", "pt-BR", "es-MX"},
			expected:  "es",
		},
		{
			name:      "regional tag maps to base subtag",
			site:      &fakeSite{path: "/"},
			languages: []string{"fr-CA"},
			expected:  "fr",
		},
		{
			name:      "everything exhausted falls back to default",
			site:      &fakeSite{path: "/"},
			languages: []string{"ja", "ko"},
			expected:  "en",
		},
		{
			name:     "nil collaborators yield default",
			expected: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prefs PreferenceStore
			if tt.preference != "" {
				m := &MemoryPreferences{}
				require.NoError(t, m.SetPreference(tt.preference))
				prefs = m
			}
			var langs LanguageSource
			if tt.languages != nil {
				langs = StaticLanguages(tt.languages)
			}

			detector := NewDetector(registry, tt.site, prefs, langs)
			assert.Equal(t, tt.expected, detector.Detect())
		})
	}
}

// TestFirstPathSegment tests URL path segment extraction.
func TestFirstPathSegment(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/es/studio", expected: "es"},
		{path: "/es", expected: "es"},
		{path: "/", expected: ""},
		{path: "", expected: ""},
		{path: "/pricing/plans", expected: "pricing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstPathSegment(tt.path))
		})
	}
}
