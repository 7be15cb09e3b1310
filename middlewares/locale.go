package middlewares

import "github.com/gin-gonic/gin"

// LocaleCookieName persists the language preference per browser session.
const LocaleCookieName = "language"

// LocaleKey is the context key the resolved locale is stored under.
const LocaleKey = "locale"

const DefaultLocale = "uk"

// SupportedLocale reports whether lang is one of the two site languages.
func SupportedLocale(lang string) bool {
	return lang == "uk" || lang == "en"
}

// LocaleMiddleware resolves the request locale from the session cookie and
// carries it in the request context. The backend only ever emits message
// keys; the locale travels with the response data for the presentation layer.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, err := c.Cookie(LocaleCookieName)
		if err != nil || !SupportedLocale(lang) {
			lang = DefaultLocale
		}
		c.Set(LocaleKey, lang)
		c.Next()
	}
}

// CurrentLocale reads the locale resolved by LocaleMiddleware.
func CurrentLocale(c *gin.Context) string {
	if lang, exists := c.Get(LocaleKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return DefaultLocale
}
