// Package middleware provides the gin middleware of both HTTP services.
package middleware

import (
	"net/http"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/gin-gonic/gin"
)

const languageKey = "language"

const langCookieMaxAge = 365 * 24 * time.Hour

// LanguageMiddleware resolves the request language from ?lang=, the lang
// cookie and Accept-Language, in that order. A language chosen by query is
// remembered in the cookie.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(i18n.LangCookieName)
		lang, persist := i18n.ResolveLanguage(c.Query(i18n.LangParam), cookie, c.GetHeader("Accept-Language"))

		if persist && cookie != string(lang) {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(i18n.LangCookieName, string(lang), int(langCookieMaxAge.Seconds()), "/", "", false, false)
		}
		c.Header("Content-Language", string(lang))
		c.Set(languageKey, lang)
		c.Next()
	}
}

// GetLanguage returns the language resolved for the request.
func GetLanguage(c *gin.Context) content.Language {
	if v, ok := c.Get(languageKey); ok {
		if lang, ok := v.(content.Language); ok {
			return lang
		}
	}
	return i18n.DefaultLanguage
}
