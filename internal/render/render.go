// Package render formats dice results for people, using the locale catalogs
// for symbol names, plural forms and separators.
package render

import (
	"strings"

	"github.com/louisbranch/narrative.dice/internal/core/dice"
	"github.com/louisbranch/narrative.dice/internal/platform/i18n/catalog"
)

// Renderer formats results for one locale.
type Renderer struct {
	bundle *catalog.Bundle
	locale string
}

// NewRenderer returns a renderer for the catalog locale that best matches
// locale. Unknown locales render in catalog.BaseLocale.
func NewRenderer(locale string) *Renderer {
	bundle := catalog.Default()
	return &Renderer{
		bundle: bundle,
		locale: bundle.ResolveLocale(locale),
	}
}

// Locale returns the resolved catalog locale.
func (r *Renderer) Locale() string {
	return r.locale
}

// Format renders a net result in symbol priority order. In the base locale
// the output matches dice.Format.
func (r *Renderer) Format(result dice.Result) string {
	if result.IsBlank() {
		return r.message("results.blank", dice.BlankLabel)
	}
	var phrases []string
	for _, s := range dice.Symbols() {
		n := result.Count(s)
		if n == 0 {
			continue
		}
		phrases = append(phrases, r.Count(s, n))
	}
	return strings.Join(phrases, r.message("results.separator", ", "))
}

// Count renders a single symbol count, such as "2 Successes".
func (r *Renderer) Count(s dice.Symbol, n int) string {
	return r.bundle.Plural(r.locale, "results."+s.String(), n)
}

// Die returns the display name of a die kind.
func (r *Renderer) Die(d dice.Die) string {
	return r.message("results.die."+d.String(), d.String())
}

// Pool lists the pool's dice by display name in canonical order.
func (r *Renderer) Pool(pool dice.Pool) string {
	if pool.IsEmpty() {
		return r.message("results.pool.empty", "")
	}
	names := make([]string, 0, pool.Len())
	for d := range pool.All() {
		names = append(names, r.Die(d))
	}
	return strings.Join(names, r.message("results.separator", ", "))
}

func (r *Renderer) message(key, fallback string) string {
	if value, ok := r.bundle.Message(r.locale, key); ok {
		return value
	}
	return fallback
}
