package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnvLanguages tests environment-based language detection.
func TestEnvLanguages(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected []string
	}{
		{
			name:     "LANGUAGE list takes priority",
			env:      map[string]string{"LANGUAGE": "pt_BR:es:en", "LANG": "de_DE.UTF-8"},
			expected: []string{"pt_BR", "es", "en"},
		},
		{
			name:     "LC_ALL before LANG",
			env:      map[string]string{"LC_ALL": "fr_FR.UTF-8", "LANG": "de_DE.UTF-8"},
			expected: []string{"fr_FR"},
		},
		{
			name:     "LANG encoding suffix stripped",
			env:      map[string]string{"LANG": "es_MX.UTF-8"},
			expected: []string{"es_MX"},
		},
		{
			name:     "nothing set",
			env:      map[string]string{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
				t.Setenv(name, tt.env[name])
			}
			assert.Equal(t, tt.expected, EnvLanguages{}.Languages())
		})
	}
}

// TestFilePreferences tests the JSON-file preference store.
func TestFilePreferences(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locale.json")
		prefs := NewFilePreferences(path)

		_, ok := prefs.Preference()
		assert.False(t, ok)

		require.NoError(t, prefs.SetPreference("fr"))

		code, ok := prefs.Preference()
		assert.True(t, ok)
		assert.Equal(t, "fr", code)

		// A fresh store over the same file sees the persisted value.
		code, ok = NewFilePreferences(path).Preference()
		assert.True(t, ok)
		assert.Equal(t, "fr", code)
	})

	t.Run("empty path disables persistence", func(t *testing.T) {
		prefs := NewFilePreferences("")
		require.NoError(t, prefs.SetPreference("fr"))
		_, ok := prefs.Preference()
		assert.False(t, ok)
	})

	t.Run("corrupt file reports no preference", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locale.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		_, ok := NewFilePreferences(path).Preference()
		assert.False(t, ok)
	})
}

// TestMemorySiteURL tests startup URL parsing and path replacement.
func TestMemorySiteURL(t *testing.T) {
	t.Run("parses path and query", func(t *testing.T) {
		site := NewMemorySiteURL("https://studio.example.com/es/booking?lang=fr&ref=mail")
		assert.Equal(t, "/es/booking", site.Path())
		assert.Equal(t, "fr", site.Query("lang"))
		assert.Equal(t, "", site.Query("missing"))
	})

	t.Run("bare host yields root path", func(t *testing.T) {
		site := NewMemorySiteURL("https://studio.example.com")
		assert.Equal(t, "/", site.Path())
	})

	t.Run("replace path", func(t *testing.T) {
		site := NewMemorySiteURL("https://studio.example.com/booking")
		site.ReplacePath("/fr/booking")
		assert.Equal(t, "/fr/booking", site.Path())

		site.ReplacePath("")
		assert.Equal(t, "/", site.Path())
	})
}
