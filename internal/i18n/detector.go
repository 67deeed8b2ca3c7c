package i18n

import "strings"

// Detector chooses the startup locale from the site URL, the persisted
// preference, and the visitor's reported languages.
type Detector struct {
	registry    *Registry
	site        SiteURL
	preferences PreferenceStore
	languages   LanguageSource
}

// NewDetector creates a detector over the given collaborators. Any of the
// collaborators except the registry may be nil, in which case that source
// is skipped.
func NewDetector(registry *Registry, site SiteURL, preferences PreferenceStore, languages LanguageSource) *Detector {
	return &Detector{
		registry:    registry,
		site:        site,
		preferences: preferences,
		languages:   languages,
	}
}

// Detect returns the locale the site should start in. Sources are consulted
// in strict order: the lang query parameter, the first URL path segment,
// the persisted preference, the visitor's primary language, the remaining
// reported languages, and finally the default locale. The first supported
// candidate wins.
func (d *Detector) Detect() string {
	if d.site != nil {
		if code := NormalizeCode(d.site.Query("lang")); code != "" && d.registry.IsSupported(code) {
			return code
		}
		if seg := firstPathSegment(d.site.Path()); len(seg) == 2 && d.registry.IsSupported(seg) {
			return NormalizeCode(seg)
		}
	}

	if d.preferences != nil {
		if code, ok := d.preferences.Preference(); ok && d.registry.IsSupported(code) {
			return NormalizeCode(code)
		}
	}

	if d.languages != nil {
		for _, tag := range d.languages.Languages() {
			if base := BaseSubtag(tag); base != "" && d.registry.IsSupported(base) {
				return base
			}
		}
	}

	return d.registry.DefaultCode()
}

// firstPathSegment returns the first segment of a URL path, without slashes.
func firstPathSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}
