// Package i18n renders localized error messages from the "errors" namespace
// of the shared locale catalogs.
package i18n

import (
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/narrative.dice/internal/platform/i18n/catalog"
)

// Code is a machine-readable error code. It mirrors errors.Code, which
// cannot be imported here without a cycle.
type Code = string

// namespace holds error templates in the locale catalogs; keys are
// "errors.<CODE>".
const namespace = "errors"

// Catalog holds the parsed message templates of one locale.
type Catalog struct {
	locale    string
	templates map[Code]*template.Template
	raw       map[Code]string
}

// catalogs caches one Catalog per resolved locale.
var catalogs sync.Map

// GetCatalog returns the catalog serving locale. Unknown locales resolve to
// the base locale and language-only tags to their regional catalog.
func GetCatalog(locale string) *Catalog {
	resolved := i18ncatalog.Default().ResolveLocale(strings.TrimSpace(locale))
	if cached, ok := catalogs.Load(resolved); ok {
		return cached.(*Catalog)
	}
	messages := i18ncatalog.Default().NamespaceMessages(resolved, namespace)
	built := NewCatalog(resolved, toCodeMap(messages))
	actual, _ := catalogs.LoadOrStore(resolved, built)
	return actual.(*Catalog)
}

// NewCatalog parses messages into a catalog. A message that is not a valid
// template is kept and rendered verbatim.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		templates: make(map[Code]*template.Template, len(messages)),
		raw:       make(map[Code]string, len(messages)),
	}
	for code, message := range messages {
		c.raw[code] = message
		tmpl, err := template.New(code).Option("missingkey=zero").Parse(message)
		if err != nil {
			continue
		}
		c.templates[code] = tmpl
	}
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for code with metadata as template data, so
// "{{.die}}" reads metadata["die"]. Unknown codes render as the code itself
// and absent metadata keys render empty.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.raw[code]
	if !ok {
		return code
	}
	tmpl, ok := c.templates[code]
	if !ok {
		return raw
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, metadata); err != nil {
		return raw
	}
	return b.String()
}

func toCodeMap(messages map[string]string) map[Code]string {
	out := make(map[Code]string, len(messages))
	for key, value := range messages {
		out[strings.TrimPrefix(key, namespace+".")] = value
	}
	return out
}
