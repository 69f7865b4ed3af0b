package elements_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/testsupport"
)

func TestText_Golden(t *testing.T) {
	out, err := elements.New().Text(elements.TextConfig{
		Name:        "kbs-subject",
		Value:       `Printer "on fire"`,
		Label:       "Subject",
		Description: "Short summary <required>",
		Placeholder: "Subject",
		Data:        elements.Data{{Key: "Ticket ID", Value: "42"}},
	})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	testsupport.AssertGolden(t, "testdata/text.golden", out)
}

func TestText_Defaults(t *testing.T) {
	out, err := elements.New().Text(elements.TextConfig{})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	parsed := testsupport.ParseFragment(t, out)
	input, ok := testsupport.Find(parsed, "input", "name", "text")
	if !ok {
		t.Fatalf("expected default name, got %s", out)
	}
	if input.Attrs["class"] != "regular-text" || input.Attrs["id"] != "text" {
		t.Fatalf("unexpected defaults %#v", input.Attrs)
	}
	if len(testsupport.Filter(parsed, "label")) != 0 {
		t.Fatalf("label should be omitted without text: %s", out)
	}
}

func TestText_DescriptionHTMLIsSanitised(t *testing.T) {
	out, err := elements.New().Text(elements.TextConfig{
		Name:            "url",
		DescriptionHTML: `See <a href="https://example.com/docs" onclick="x()">docs</a><script>alert(1)</script> <strong>now</strong>`,
	})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if strings.Contains(out, "<script") || strings.Contains(out, "onclick") {
		t.Fatalf("unsafe markup survived: %s", out)
	}
	if !strings.Contains(out, `<a href="https://example.com/docs">docs</a>`) || !strings.Contains(out, "<strong>now</strong>") {
		t.Fatalf("allowed markup was dropped: %s", out)
	}
}

func TestDateField_AddsDatepickerToken(t *testing.T) {
	e := elements.New()
	cases := map[string]string{
		"":                           "kbs_datepicker",
		"regular-text":               "regular-text kbs_datepicker",
		"kbs_datepicker wide":        "kbs_datepicker wide",
		"wide kbs_datepicker":        "wide kbs_datepicker",
		"kbs_datepicker_alt another": "kbs_datepicker_alt another kbs_datepicker",
	}
	for class, want := range cases {
		out, err := e.DateField(elements.TextConfig{Name: "due", Class: class})
		if err != nil {
			t.Fatalf("date field: %v", err)
		}
		input := testsupport.Filter(testsupport.ParseFragment(t, out), "input")[0]
		if input.Attrs["class"] != want {
			t.Fatalf("class %q: got %q, want %q", class, input.Attrs["class"], want)
		}
	}
}

func TestNumber_ClampsMaxToCeiling(t *testing.T) {
	out, err := elements.New().Number(elements.NumberConfig{
		Name: "rating",
		Min:  elements.Int(0),
		Max:  elements.Int(10),
	})
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	input := testsupport.Filter(testsupport.ParseFragment(t, out), "input")[0]
	want := map[string]string{"min": "0", "max": "5", "type": "number", "class": "small-text"}
	for name, value := range want {
		if input.Attrs[name] != value {
			t.Fatalf("attr %s = %q, want %q (%s)", name, input.Attrs[name], value, out)
		}
	}
}

func TestNumber_CeilingIsConfigurable(t *testing.T) {
	for ceiling, want := range map[int]string{0: "10", 20: "10", 8: "8"} {
		out, err := elements.New(elements.WithNumberCeiling(ceiling)).Number(elements.NumberConfig{
			Name: "n",
			Max:  elements.Int(10),
		})
		if err != nil {
			t.Fatalf("number: %v", err)
		}
		input := testsupport.Filter(testsupport.ParseFragment(t, out), "input")[0]
		if input.Attrs["max"] != want {
			t.Fatalf("ceiling %d: max=%q, want %q", ceiling, input.Attrs["max"], want)
		}
	}
}

func TestNumber_OmitsUnsetBounds(t *testing.T) {
	out, err := elements.New().Number(elements.NumberConfig{Name: "n"})
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	if strings.Contains(out, "min=") || strings.Contains(out, "max=") {
		t.Fatalf("expected no bounds, got %s", out)
	}
}

func TestHidden(t *testing.T) {
	out, err := elements.New().Hidden(elements.HiddenConfig{Name: "kbs-nonce", Value: `a"b`})
	if err != nil {
		t.Fatalf("hidden: %v", err)
	}
	want := `<input type="hidden" name="kbs-nonce" id="kbs_nonce" value="a&#34;b" />`
	if out != want {
		t.Fatalf("hidden mismatch\nwant: %s\n got: %s", want, out)
	}
}

func TestTextarea(t *testing.T) {
	out, err := elements.New().Textarea(elements.TextareaConfig{
		Name:        "kbs_reply",
		Value:       "</textarea><script>x</script>",
		Label:       "Reply",
		Description: "Visible to the customer",
		Placeholder: "Type here",
		Disabled:    true,
	})
	if err != nil {
		t.Fatalf("textarea: %v", err)
	}
	parsed := testsupport.ParseFragment(t, out)
	var tags []string
	for _, el := range parsed {
		tags = append(tags, el.Tag)
	}
	if diff := cmp.Diff([]string{"span", "label", "textarea", "span"}, tags); diff != "" {
		t.Fatalf("textarea structure mismatch (-want +got):\n%s\n%s", diff, out)
	}
	area := parsed[2]
	if area.Text != "</textarea><script>x</script>" {
		t.Fatalf("textarea content should round-trip, got %q", area.Text)
	}
	if !area.Has("disabled") || area.Attrs["placeholder"] != "Type here" || area.Attrs["class"] != "large-text" {
		t.Fatalf("unexpected textarea attrs %#v", area.Attrs)
	}
}

func TestUserSearch_Scaffold(t *testing.T) {
	e := elements.New(elements.WithTranslator(stubTranslator{"Cancel": "Cancelar", "Enter username": "Usuario"}, "es"))
	out, err := e.UserSearch(elements.UserSearchConfig{Class: "wide"})
	if err != nil {
		t.Fatalf("user search: %v", err)
	}
	testsupport.AssertGolden(t, "testdata/user_search.golden", out)
}
