package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-kbs-elements/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLookup_FallsBackToKey(t *testing.T) {
	got := render.Lookup(stubTranslator{"All": "Todos"}, "es", "kb-support", "None", nil)
	if got != "None" {
		t.Fatalf("expected key fallback, got %q", got)
	}

	got = render.Lookup(stubTranslator{"All": "Todos"}, "es", "kb-support", "All", nil)
	if got != "Todos" {
		t.Fatalf("expected translated value, got %q", got)
	}
}

func TestLookup_NilTranslatorFormatsKey(t *testing.T) {
	got := render.Lookup(nil, "en", "kb-support", "All %s", nil, "Categories")
	if got != "All Categories" {
		t.Fatalf("expected formatted key, got %q", got)
	}
}

func TestLookup_UsesMissingHandler(t *testing.T) {
	var gotErr error
	handler := func(locale, key string, _ []any, err error) string {
		gotErr = err
		return "[" + locale + ":" + key + "]"
	}
	got := render.Lookup(nil, "fr", "kb-support", "Cancel", handler)
	if got != "[fr:Cancel]" {
		t.Fatalf("unexpected handler output %q", got)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestCatalog_ScopesByDomain(t *testing.T) {
	catalog := render.NewCatalog()
	catalog.Add("es_ES", "kb-support", map[string]string{
		"All %s":  "Todas las %s",
		"January": "Enero",
	})

	if got := render.Lookup(catalog, "es-ES", "kb-support", "January", nil); got != "Enero" {
		t.Fatalf("expected domain translation, got %q", got)
	}
	if got := render.Lookup(catalog, "es-ES", "kb-support", "All %s", nil, "Categorías"); got != "Todas las Categorías" {
		t.Fatalf("expected formatted translation, got %q", got)
	}
	if got := render.Lookup(catalog, "es-ES", "other", "January", nil); got != "January" {
		t.Fatalf("expected other domain to miss, got %q", got)
	}
}

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"en_US":   "en-US",
		" pt-br ": "pt-BR",
		"":        "",
	}
	for input, want := range cases {
		if got := render.NormalizeLocale(input); got != want {
			t.Fatalf("NormalizeLocale(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTranslateFuncs_TranslateHelper(t *testing.T) {
	catalog := render.NewCatalog()
	catalog.Add("de", "kb-support", map[string]string{"Opened": "Geöffnet"})

	funcs := render.TranslateFuncs(catalog, "kb-support", nil)
	translate, ok := funcs["translate"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("expected translate helper, got %T", funcs["translate"])
	}
	if got := translate(map[string]any{"locale": "de"}, "Opened"); got != "Geöffnet" {
		t.Fatalf("expected translated helper output, got %q", got)
	}
	if got := translate("de", "Closed"); got != "Closed" {
		t.Fatalf("expected fallback helper output, got %q", got)
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := render.LoadCatalog(strings.NewReader(`
es_ES:
  kb-support:
    "All %s": "Todas las %s"
    Cancel: Cancelar
`))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if got := render.Lookup(catalog, "es-ES", "kb-support", "All %s", nil, "Categorías"); got != "Todas las Categorías" {
		t.Fatalf("unexpected lookup %q", got)
	}
	if got := render.Lookup(catalog, "es-ES", "other", "Cancel", nil); got != "Cancel" {
		t.Fatalf("domains should not leak, got %q", got)
	}

	if _, err := render.LoadCatalog(strings.NewReader("- not a map")); err == nil {
		t.Fatal("expected decode error")
	}
}
