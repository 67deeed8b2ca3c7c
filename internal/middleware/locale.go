package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/internal/i18n"
)

// Locale returns a middleware that picks the locale error messages should
// be rendered in for each request: the Accept-Language header when it names
// a supported locale, otherwise the engine's active locale.
func Locale(engine *i18n.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := engine.ActiveLocale()
		if header := c.GetHeader("Accept-Language"); header != "" {
			locale = engine.LocaleFromHeader(header)
		}
		c.Set(string(LocaleKey), locale)
		c.Next()
	}
}

// GetLocale retrieves the request's locale from the gin context.
func GetLocale(c *gin.Context) string {
	if v, exists := c.Get(string(LocaleKey)); exists {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return ""
}

// Translate resolves a message key in the request's locale. The engine's
// resolver never fails, so this always returns a presentable string.
func Translate(engine *i18n.Engine, c *gin.Context, key string) string {
	msg, _ := engine.ResolveIn(GetLocale(c), key, nil)
	return msg
}
