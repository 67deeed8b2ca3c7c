package i18n

import (
	"encoding/json"
	"net/url"
	"os"
	"strings"
	"sync"
)

// EnvLanguages reads the visitor's preferred languages from the process
// environment: LANGUAGE (a colon-separated priority list), then the first
// of LC_ALL, LC_MESSAGES, and LANG that is set.
type EnvLanguages struct{}

// Languages implements LanguageSource.
func (EnvLanguages) Languages() []string {
	if list := os.Getenv("LANGUAGE"); list != "" {
		var tags []string
		for _, tag := range strings.Split(list, ":") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, stripEncoding(tag))
			}
		}
		if len(tags) > 0 {
			return tags
		}
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag := os.Getenv(name); tag != "" {
			return []string{stripEncoding(tag)}
		}
	}
	return nil
}

// stripEncoding removes the ".UTF-8" style suffix from a locale tag.
func stripEncoding(tag string) string {
	if i := strings.IndexByte(tag, '.'); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// StaticLanguages is a fixed language list, useful in tests and when the
// deployment pins the audience's languages.
type StaticLanguages []string

// Languages implements LanguageSource.
func (s StaticLanguages) Languages() []string {
	return s
}

// FilePreferences persists the locale preference as a small JSON file.
// An empty path disables persistence: reads report no preference and
// writes succeed without doing anything.
type FilePreferences struct {
	path string
	mu   sync.Mutex
}

// NewFilePreferences creates a file-backed preference store.
func NewFilePreferences(path string) *FilePreferences {
	return &FilePreferences{path: path}
}

type preferenceDoc struct {
	Locale string `json:"locale"`
}

// Preference implements PreferenceStore.
func (p *FilePreferences) Preference() (string, bool) {
	if p.path == "" {
		return "", false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		return "", false
	}
	var doc preferenceDoc
	if err := json.Unmarshal(data, &doc); err != nil || doc.Locale == "" {
		return "", false
	}
	return doc.Locale, true
}

// SetPreference implements PreferenceStore.
func (p *FilePreferences) SetPreference(code string) error {
	if p.path == "" {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.Marshal(preferenceDoc{Locale: code})
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o600)
}

// MemoryPreferences is an in-memory preference store for tests.
type MemoryPreferences struct {
	mu     sync.Mutex
	code   string
	stored bool
}

// Preference implements PreferenceStore.
func (m *MemoryPreferences) Preference() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code, m.stored
}

// SetPreference implements PreferenceStore.
func (m *MemoryPreferences) SetPreference(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.code = code
	m.stored = true
	return nil
}

// MemorySiteURL holds the canonical site URL state in memory, seeded from
// the configured startup URL.
type MemorySiteURL struct {
	mu    sync.RWMutex
	path  string
	query url.Values
}

// NewMemorySiteURL parses a startup URL into in-memory URL state. An
// unparsable URL yields the root path with no query.
func NewMemorySiteURL(rawURL string) *MemorySiteURL {
	s := &MemorySiteURL{path: "/", query: url.Values{}}
	u, err := url.Parse(rawURL)
	if err != nil {
		return s
	}
	if u.Path != "" {
		s.path = u.Path
	}
	s.query = u.Query()
	return s
}

// Path implements SiteURL.
func (s *MemorySiteURL) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Query implements SiteURL.
func (s *MemorySiteURL) Query(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query.Get(name)
}

// ReplacePath implements SiteURL.
func (s *MemorySiteURL) ReplacePath(path string) {
	if path == "" {
		path = "/"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}
