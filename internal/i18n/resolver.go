package i18n

import (
	"regexp"
	"strings"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

// Resolution outcomes, used for metrics and the translate endpoint's
// source field.
const (
	// SourceActive means the key resolved in the requested locale's tree.
	SourceActive = "active"
	// SourceFallback means the key resolved in the default locale's tree.
	SourceFallback = "fallback"
	// SourceMiss means the literal key was returned.
	SourceMiss = "miss"
)

// placeholderPattern matches {{ name }} placeholders. Whitespace inside the
// braces is ignored; names are case-sensitive.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// lookupTemplate walks the active tree, then the fallback tree, then gives
// up and returns the literal key. It never fails.
func lookupTemplate(key string, active, fallback *model.Node) (string, string) {
	segments := strings.Split(key, ".")

	if tpl, ok := active.Lookup(segments); ok {
		return tpl, SourceActive
	}
	if fallback != nil && fallback != active {
		if tpl, ok := fallback.Lookup(segments); ok {
			return tpl, SourceFallback
		}
	}
	return key, SourceMiss
}

// Interpolate substitutes {{ name }} placeholders in a template with values
// from params. Placeholders with no matching param are left verbatim so
// missing values stay visible in rendered copy.
func Interpolate(template string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(template, "{{") {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if v, ok := params[name]; ok {
			return v
		}
		return match
	})
}
