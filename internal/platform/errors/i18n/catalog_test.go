package i18n

import "testing"

func TestGetCatalogFallsBackToBaseLocale(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	for _, locale := range []string{"", "missing-locale", "fr-FR"} {
		if got := GetCatalog(locale); got != base {
			t.Fatalf("GetCatalog(%q) locale = %q, want cached en-US catalog", locale, got.Locale())
		}
	}
}

func TestFormat(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"GREETING":  "hello {{.name}}",
		"BROKEN":    "{{ if .name }}",
		"EXEC_FAIL": "{{ call .name }}",
	})

	tests := []struct {
		name     string
		code     Code
		metadata map[string]string
		want     string
	}{
		{name: "metadata", code: "GREETING", metadata: map[string]string{"name": "Leia"}, want: "hello Leia"},
		{name: "missing metadata", code: "GREETING", want: "hello "},
		{name: "unknown code", code: "NOPE", want: "NOPE"},
		{name: "parse error", code: "BROKEN", want: "{{ if .name }}"},
		{name: "execute error", code: "EXEC_FAIL", metadata: map[string]string{"name": "x"}, want: "{{ call .name }}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cat.Format(tc.code, tc.metadata); got != tc.want {
				t.Fatalf("Format(%s) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestGetCatalogLoadsErrorNamespace(t *testing.T) {
	cat := GetCatalog("en-US")
	got := cat.Format("DIE_UNKNOWN", map[string]string{"die": "purple"})
	if got != `Unknown die "purple".` {
		t.Fatalf("Format(DIE_UNKNOWN) = %q", got)
	}
}

func TestGetCatalogResolvesLanguageOnly(t *testing.T) {
	cat := GetCatalog("pt")
	if cat.Locale() != "pt-BR" {
		t.Fatalf("Locale() = %q, want pt-BR", cat.Locale())
	}
	if got := cat.Format("UNKNOWN", nil); got != "Algo deu errado." {
		t.Fatalf("Format(UNKNOWN) = %q", got)
	}
}
