package i18n

import (
	"strings"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lang"
)

// DefaultLanguage is used when a request expresses no usable preference.
const DefaultLanguage = content.LangEN

var supportedTags = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supportedTags)

// Tag returns the BCP 47 tag of lang.
func Tag(lang content.Language) language.Tag {
	if lang == content.LangAR {
		return language.Arabic
	}
	return language.English
}

// ParseLanguage accepts a site language code or any BCP 47 tag whose base
// language is supported, such as "ar-AE".
func ParseLanguage(raw string) (content.Language, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if lang, ok := content.ParseLanguage(strings.ToLower(raw)); ok {
		return lang, true
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	return content.ParseLanguage(base.String())
}

// ResolveLanguage picks the request language from the query parameter, then
// the cookie, then the Accept-Language header. The bool reports whether the
// choice came from the query parameter and should be persisted.
func ResolveLanguage(query, cookie, acceptLanguage string) (content.Language, bool) {
	if lang, ok := ParseLanguage(query); ok {
		return lang, true
	}
	if lang, ok := ParseLanguage(cookie); ok {
		return lang, false
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No {
				if index == 1 {
					return content.LangAR, false
				}
				return content.LangEN, false
			}
		}
	}
	return DefaultLanguage, false
}
