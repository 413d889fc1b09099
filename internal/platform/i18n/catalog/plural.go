package catalog

import (
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Plural formats the count message for n. Catalogs store plural variants as
// "<key>.one" and "<key>.other"; the CLDR cardinal rules of the locale pick
// the variant, falling back to "other".
func (b *Bundle) Plural(locale string, key string, n int) string {
	resolved := b.ResolveLocale(locale)
	tag := language.Make(resolved)

	variant := "other"
	if plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) == plural.One {
		variant = "one"
	}
	format, ok := b.Message(resolved, key+"."+variant)
	if !ok {
		format, ok = b.Message(resolved, key+".other")
	}
	if !ok {
		return fmt.Sprintf("%d %s", n, key)
	}
	return message.NewPrinter(tag).Sprintf(format, n)
}
