package web

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/louisbranch/narrative.dice/internal/platform/i18n/catalog"
)

// pageCopy holds translatable copy for the dice pages.
type pageCopy struct {
	Locale     string
	RollTitle  string
	FacesTitle string
	ErrorTitle string
	CheckPass  string
	CheckFail  string
	Seed       string
	FaceIndex  string
}

func copyFor(locale string) pageCopy {
	bundle := catalog.Default()
	resolved := bundle.ResolveLocale(locale)
	return pageCopy{
		Locale:     resolved,
		RollTitle:  localizeWithFallback(bundle, resolved, "web.title.roll", "Roll"),
		FacesTitle: localizeWithFallback(bundle, resolved, "web.title.faces", "Dice faces"),
		ErrorTitle: localizeWithFallback(bundle, resolved, "web.title.error", "Error"),
		CheckPass:  localizeWithFallback(bundle, resolved, "web.check.pass", "The check succeeds."),
		CheckFail:  localizeWithFallback(bundle, resolved, "web.check.fail", "The check fails."),
		Seed:       localizeWithFallback(bundle, resolved, "web.seed", "Seed"),
		FaceIndex:  localizeWithFallback(bundle, resolved, "web.face.index", "Face"),
	}
}

func localizeWithFallback(bundle *catalog.Bundle, locale, key, fallback string) string {
	if value, ok := bundle.Message(locale, key); ok {
		return value
	}
	return fallback
}

// requestLocale picks the locale query parameter, then the first
// Accept-Language tag, then fallback.
func requestLocale(r *http.Request, fallback string) string {
	if locale := strings.TrimSpace(r.URL.Query().Get("locale")); locale != "" {
		return locale
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err == nil && len(tags) > 0 {
		return tags[0].String()
	}
	return fallback
}
