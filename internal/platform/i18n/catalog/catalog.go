package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// BaseLocale is the source locale every other catalog translates.
const BaseLocale = "en-US"

// localeCatalog holds one locale's messages, flat and by namespace.
type localeCatalog struct {
	namespaces map[string]map[string]string
	messages   map[string]string
}

// Bundle is an immutable set of locale catalogs.
type Bundle struct {
	locales map[string]*localeCatalog
	// tags lists locales in matcher order, base locale first.
	tags    []string
	matcher language.Matcher
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	slices.Sort(paths)

	bundle := &Bundle{locales: map[string]*localeCatalog{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		file, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(p, file); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.buildMatcher(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// add merges one parsed file after checking it against its path.
func (b *Bundle) add(p string, file catalogFile) error {
	wantLocale := path.Base(path.Dir(p))
	wantNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if file.Locale != wantLocale {
		return fmt.Errorf("locale %q must match path locale %q", file.Locale, wantLocale)
	}
	if file.Namespace != wantNamespace {
		return fmt.Errorf("namespace %q must match filename namespace %q", file.Namespace, wantNamespace)
	}

	catalog, ok := b.locales[file.Locale]
	if !ok {
		catalog = &localeCatalog{
			namespaces: map[string]map[string]string{},
			messages:   map[string]string{},
		}
		b.locales[file.Locale] = catalog
	}
	if _, exists := catalog.namespaces[file.Namespace]; exists {
		return fmt.Errorf("namespace %q already defined for locale %q", file.Namespace, file.Locale)
	}

	prefix := file.Namespace + "."
	for key, value := range file.Messages {
		if !strings.HasPrefix(key, prefix) {
			return fmt.Errorf("key %q must start with namespace %q", key, file.Namespace)
		}
		if _, exists := catalog.messages[key]; exists {
			return fmt.Errorf("duplicate key %q in locale %q", key, file.Locale)
		}
		catalog.messages[key] = value
	}
	catalog.namespaces[file.Namespace] = maps.Clone(file.Messages)
	return nil
}

// buildMatcher prepares locale negotiation with the base locale preferred.
func (b *Bundle) buildMatcher() error {
	b.tags = append([]string{BaseLocale}, slices.DeleteFunc(b.Locales(), func(l string) bool {
		return l == BaseLocale
	})...)
	tags := make([]language.Tag, 0, len(b.tags))
	for _, locale := range b.tags {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags = append(tags, tag)
	}
	b.matcher = language.NewMatcher(tags)
	return nil
}

// HasLocale reports whether a catalog exists for exactly locale.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the available locales, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.locales))
}

// ResolveLocale returns the catalog locale that best serves the requested
// one, such as "pt-BR" for "pt". Unknown or blank requests resolve to
// BaseLocale.
func (b *Bundle) ResolveLocale(locale string) string {
	trimmed := strings.TrimSpace(locale)
	if b == nil || trimmed == "" || b.matcher == nil {
		return BaseLocale
	}
	if b.HasLocale(trimmed) {
		return trimmed
	}
	requested, err := language.Parse(trimmed)
	if err != nil {
		return BaseLocale
	}
	_, index, confidence := b.matcher.Match(requested)
	if confidence == language.No || index < 0 || index >= len(b.tags) {
		return BaseLocale
	}
	return b.tags[index]
}

// LocaleMessages returns a copy of every message of exactly locale.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	catalog := b.catalog(locale)
	if catalog == nil {
		return map[string]string{}
	}
	return maps.Clone(catalog.messages)
}

// NamespaceMessages returns a copy of one namespace of exactly locale.
func (b *Bundle) NamespaceMessages(locale string, namespace string) map[string]string {
	catalog := b.catalog(locale)
	if catalog == nil {
		return map[string]string{}
	}
	messages, ok := catalog.namespaces[strings.TrimSpace(namespace)]
	if !ok {
		return map[string]string{}
	}
	return maps.Clone(messages)
}

// Message looks key up in locale, then in the base locale.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	for _, candidate := range []string{locale, BaseLocale} {
		if catalog := b.catalog(candidate); catalog != nil {
			if value, ok := catalog.messages[key]; ok {
				return value, true
			}
		}
	}
	return "", false
}

func (b *Bundle) catalog(locale string) *localeCatalog {
	if b == nil {
		return nil
	}
	return b.locales[strings.TrimSpace(locale)]
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
}
