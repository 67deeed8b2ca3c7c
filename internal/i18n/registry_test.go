package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

// TestNewRegistry tests registry construction and validation.
func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name        string
		defaultCode string
		locales     []model.LocaleConfig
		wantErr     bool
	}{
		{
			name:        "valid registry",
			defaultCode: "en",
			locales:     DefaultLocales(),
			wantErr:     false,
		},
		{
			name:        "default code is normalized",
			defaultCode: " EN ",
			locales:     DefaultLocales(),
			wantErr:     false,
		},
		{
			name:        "empty default code",
			defaultCode: "",
			locales:     DefaultLocales(),
			wantErr:     true,
		},
		{
			name:        "default not in registry",
			defaultCode: "ja",
			locales:     DefaultLocales(),
			wantErr:     true,
		},
		{
			name:        "default disabled",
			defaultCode: "en",
			locales: []model.LocaleConfig{
				{Code: "en", Enabled: false},
				{Code: "es", Enabled: true},
			},
			wantErr: true,
		},
		{
			name:        "duplicate codes",
			defaultCode: "en",
			locales: []model.LocaleConfig{
				{Code: "en", Enabled: true},
				{Code: "EN", Enabled: true},
			},
			wantErr: true,
		},
		{
			name:        "locale with empty code",
			defaultCode: "en",
			locales: []model.LocaleConfig{
				{Code: "en", Enabled: true},
				{Code: "", Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry(tt.defaultCode, tt.locales)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, registry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, registry)
			}
		})
	}
}

// TestRegistry_Get tests lookup of enabled, disabled, and unknown locales.
func TestRegistry_Get(t *testing.T) {
	registry, err := NewRegistry("en", []model.LocaleConfig{
		{Code: "en", DisplayName: "English", Direction: model.DirectionLTR, Enabled: true},
		{Code: "ar", DisplayName: "Arabic", Direction: model.DirectionRTL, Enabled: true},
		{Code: "fr", DisplayName: "French", Direction: model.DirectionLTR, Enabled: false},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		code  string
		found bool
	}{
		{name: "enabled locale", code: "en", found: true},
		{name: "rtl locale", code: "ar", found: true},
		{name: "case insensitive", code: "AR", found: true},
		{name: "disabled locale", code: "fr", found: false},
		{name: "unknown locale", code: "ja", found: false},
		{name: "empty code", code: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := registry.Get(tt.code)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.found, registry.IsSupported(tt.code))
			if tt.found {
				assert.Equal(t, NormalizeCode(tt.code), cfg.Code)
			}
		})
	}
}

// TestRegistry_ListEnabled verifies registration order and disabled filtering.
func TestRegistry_ListEnabled(t *testing.T) {
	registry, err := NewRegistry("es", []model.LocaleConfig{
		{Code: "es", Enabled: true},
		{Code: "fr", Enabled: false},
		{Code: "de", Enabled: true},
		{Code: "pt", Enabled: true},
	})
	require.NoError(t, err)

	enabled := registry.ListEnabled()
	codes := make([]string, len(enabled))
	for i, lc := range enabled {
		codes[i] = lc.Code
	}
	assert.Equal(t, []string{"es", "de", "pt"}, codes)
}

// TestBaseSubtag tests primary language subtag extraction.
func TestBaseSubtag(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{tag: "pt-BR", expected: "pt"},
		{tag: "pt_BR", expected: "pt"},
		{tag: "en", expected: "en"},
		{tag: "EN-us", expected: "en"},
		{tag: "zh-Hant-TW", expected: "zh"},
		{tag: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseSubtag(tt.tag))
		})
	}
}

// TestLocalesFromCodes tests filtering the built-in table.
func TestLocalesFromCodes(t *testing.T) {
	t.Run("empty list returns full table", func(t *testing.T) {
		assert.Len(t, LocalesFromCodes(nil), len(DefaultLocales()))
	})

	t.Run("filters and preserves table order", func(t *testing.T) {
		locales := LocalesFromCodes([]string{"FR", "en"})
		require.Len(t, locales, 2)
		assert.Equal(t, "en", locales[0].Code)
		assert.Equal(t, "fr", locales[1].Code)
	})

	t.Run("unknown codes are ignored", func(t *testing.T) {
		locales := LocalesFromCodes([]string{"en", "xx"})
		require.Len(t, locales, 1)
		assert.Equal(t, "en", locales[0].Code)
	})
}
