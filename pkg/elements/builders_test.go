package elements_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/testsupport"
)

var fixedNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() elements.Option {
	return elements.WithClock(elements.ClockFunc(func() time.Time { return fixedNow }))
}

type stubStatuses struct {
	statuses []elements.Status
	err      error
}

func (s stubStatuses) TicketStatuses(context.Context) ([]elements.Status, error) {
	return s.statuses, s.err
}

type pluralLabels string

func (p pluralLabels) TaxonomyLabels(string) elements.TaxonomyLabels {
	return elements.TaxonomyLabels{Singular: string(p), Plural: string(p) + "s"}
}

func TestYearOptions_Range(t *testing.T) {
	got := elements.YearOptions(fixedNow, 2, -1).Keys()
	want := []string{"2024", "2025", "2026", "2027"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("year options mismatch (-want +got):\n%s", diff)
	}
}

func TestYearOptions_CapsSpan(t *testing.T) {
	cases := []struct {
		name          string
		before, after int
	}{
		{"min int before", math.MinInt, 0},
		{"max int after", 0, math.MaxInt},
		{"huge after", 0, 1_000_000_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			keys := elements.YearOptions(fixedNow, tc.before, tc.after).Keys()
			if len(keys) != elements.MaxYearSpan+1 {
				t.Fatalf("expected %d years, got %d", elements.MaxYearSpan+1, len(keys))
			}
		})
	}

	keys := elements.YearOptions(fixedNow, math.MinInt, math.MaxInt).Keys()
	if keys[0] != "1926" || keys[len(keys)-1] != "2126" {
		t.Fatalf("unexpected bounds %s..%s", keys[0], keys[len(keys)-1])
	}
}

func TestYearDropdown_SpanOutOfRange(t *testing.T) {
	out, err := elements.New(fixedClock()).YearDropdown("year", nil, math.MinInt, 0)
	if err != nil {
		t.Fatalf("lenient render: %v", err)
	}
	if got := len(testsupport.Filter(testsupport.ParseFragment(t, out), "option")); got != elements.MaxYearSpan+1 {
		t.Fatalf("expected capped range, got %d options", got)
	}

	strict := elements.New(fixedClock(), elements.WithMode(elements.ModeStrict))
	if _, err := strict.YearDropdown("year", nil, 5, elements.MaxYearSpan+1); !errors.Is(err, elements.ErrYearSpan) {
		t.Fatalf("expected ErrYearSpan, got %v", err)
	}
	if _, err := strict.YearDropdown("year", nil, -elements.MaxYearSpan, elements.MaxYearSpan); err != nil {
		t.Fatalf("spans at the limit should render: %v", err)
	}
}

func TestYearDropdown_DefaultsToCurrentYear(t *testing.T) {
	_, parsed := renderYear(t, elements.New(fixedClock()), nil)
	options := testsupport.Filter(parsed, "option")

	if diff := cmp.Diff([]string{"2021", "2022", "2023", "2024", "2025", "2026"}, optionValues(options)); diff != "" {
		t.Fatalf("year values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2026"}, selectedValues(options)); diff != "" {
		t.Fatalf("year selection mismatch (-want +got):\n%s", diff)
	}
	if sel := testsupport.Filter(parsed, "select")[0]; sel.Attrs["name"] != "year" {
		t.Fatalf("expected default name, got %q", sel.Attrs["name"])
	}
}

func TestYearDropdown_ExplicitSelection(t *testing.T) {
	_, parsed := renderYear(t, elements.New(fixedClock()), "2023")
	if diff := cmp.Diff([]string{"2023"}, selectedValues(testsupport.Filter(parsed, "option"))); diff != "" {
		t.Fatalf("year selection mismatch (-want +got):\n%s", diff)
	}
}

func renderYear(t *testing.T, e *elements.Elements, selected any) (string, []testsupport.Element) {
	t.Helper()
	out, err := e.YearDropdown("", selected, elements.DefaultYearsBefore, 0)
	if err != nil {
		t.Fatalf("year dropdown: %v", err)
	}
	return out, testsupport.ParseFragment(t, out)
}

func TestMonthDropdown(t *testing.T) {
	e := elements.New(fixedClock(), elements.WithTranslator(stubTranslator{"March": "Marzo"}, "es"))
	out, err := e.MonthDropdown("", nil)
	if err != nil {
		t.Fatalf("month dropdown: %v", err)
	}
	options := testsupport.Filter(testsupport.ParseFragment(t, out), "option")

	want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	if diff := cmp.Diff(want, optionValues(options)); diff != "" {
		t.Fatalf("month values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"3"}, selectedValues(options)); diff != "" {
		t.Fatalf("month selection mismatch (-want +got):\n%s", diff)
	}
	if options[0].Text != "January" || options[2].Text != "Marzo" {
		t.Fatalf("unexpected labels %q, %q", options[0].Text, options[2].Text)
	}
}

func TestMonthDropdown_AcceptsTimeMonth(t *testing.T) {
	out, err := elements.New(fixedClock()).MonthDropdown("m", time.November)
	if err != nil {
		t.Fatalf("month dropdown: %v", err)
	}
	options := testsupport.Filter(testsupport.ParseFragment(t, out), "option")
	if diff := cmp.Diff([]string{"11"}, selectedValues(options)); diff != "" {
		t.Fatalf("month selection mismatch (-want +got):\n%s", diff)
	}
}

func TestTicketStatusDropdown(t *testing.T) {
	e := elements.New(elements.WithStatusSource(stubStatuses{statuses: []elements.Status{
		{Name: "kbs_open", Label: "Open"},
		{Name: "kbs_hold", Label: "On Hold"},
		{Name: "closed", Label: "Closed"},
	}}))
	out, err := e.TicketStatusDropdown(context.Background(), "", "kbs_hold")
	if err != nil {
		t.Fatalf("status dropdown: %v", err)
	}
	parsed := testsupport.ParseFragment(t, out)
	options := testsupport.Filter(parsed, "option")

	if diff := cmp.Diff([]string{"kbs_open", "kbs_hold", "closed"}, optionValues(options)); diff != "" {
		t.Fatalf("status values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"kbs_hold"}, selectedValues(options)); diff != "" {
		t.Fatalf("status selection mismatch (-want +got):\n%s", diff)
	}
	if testsupport.Filter(parsed, "select")[0].Attrs["name"] != elements.DefaultStatusName {
		t.Fatalf("expected default status name: %s", out)
	}
}

func TestTicketStatusDropdown_Errors(t *testing.T) {
	if _, err := elements.New().TicketStatusDropdown(context.Background(), "", nil); !errors.Is(err, elements.ErrNoStatusSource) {
		t.Fatalf("expected ErrNoStatusSource, got %v", err)
	}

	boom := errors.New("boom")
	e := elements.New(elements.WithStatusSource(stubStatuses{err: boom}))
	if _, err := e.TicketStatusDropdown(context.Background(), "", nil); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestCategoryDropdowns(t *testing.T) {
	var asked []string
	terms := elements.TermSourceFunc(func(_ context.Context, taxonomy string) ([]elements.Term, error) {
		asked = append(asked, taxonomy)
		return []elements.Term{{ID: 7, Name: "Billing"}, {ID: -3, Name: "Hardware"}}, nil
	})
	e := elements.New(elements.WithTermSource(terms), elements.WithLabelSource(pluralLabels("Topic")))

	out, err := e.TicketCategoryDropdown(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("ticket categories: %v", err)
	}
	parsed := testsupport.ParseFragment(t, out)
	options := testsupport.Filter(parsed, "option")

	if diff := cmp.Diff([]string{"all", "7", "3"}, optionValues(options)); diff != "" {
		t.Fatalf("category values mismatch (-want +got):\n%s", diff)
	}
	if options[0].Text != "All Topics" {
		t.Fatalf("unexpected all label %q", options[0].Text)
	}
	if diff := cmp.Diff([]string{"all"}, selectedValues(options)); diff != "" {
		t.Fatalf("nil selection should pick the all option (-want +got):\n%s", diff)
	}
	if testsupport.Filter(parsed, "select")[0].Attrs["name"] != elements.DefaultTicketCategoryName {
		t.Fatalf("expected default ticket category name: %s", out)
	}

	out, err = e.ArticleCategoryDropdown(context.Background(), "cat", 3)
	if err != nil {
		t.Fatalf("article categories: %v", err)
	}
	options = testsupport.Filter(testsupport.ParseFragment(t, out), "option")
	if diff := cmp.Diff([]string{"3"}, selectedValues(options)); diff != "" {
		t.Fatalf("article selection mismatch (-want +got):\n%s", diff)
	}

	want := []string{elements.TaxonomyTicketCategory, elements.TaxonomyArticleCategory}
	if diff := cmp.Diff(want, asked); diff != "" {
		t.Fatalf("taxonomies mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryDropdown_TranslatesAllLabel(t *testing.T) {
	terms := elements.TermSourceFunc(func(context.Context, string) ([]elements.Term, error) { return nil, nil })
	e := elements.New(
		elements.WithTermSource(terms),
		elements.WithTranslator(stubTranslator{"All %s": "Todas las %s"}, "es"),
	)
	out, err := e.TicketCategoryDropdown(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("ticket categories: %v", err)
	}
	options := testsupport.Filter(testsupport.ParseFragment(t, out), "option")
	if len(options) != 1 || options[0].Text != "Todas las Categories" {
		t.Fatalf("expected only the translated all option, got %#v", options)
	}
}

func TestCategoryDropdown_NoSource(t *testing.T) {
	if _, err := elements.New().ArticleCategoryDropdown(context.Background(), "", nil); !errors.Is(err, elements.ErrNoTermSource) {
		t.Fatalf("expected ErrNoTermSource, got %v", err)
	}
}
