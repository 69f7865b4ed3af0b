package elements

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Default control names used by the dropdown builders when name is empty.
const (
	DefaultStatusName          = "post_status"
	DefaultTicketCategoryName  = "kbs_ticket_categories"
	DefaultArticleCategoryName = "kbs_article_categories"
	DefaultYearName            = "year"
	DefaultMonthName           = "month"
	DefaultYearsBefore         = 5
)

// MaxYearSpan bounds how many years the year dropdown lists on either side of
// the current year.
const MaxYearSpan = 100

// TicketStatusDropdown renders the registered ticket statuses without
// sentinel options.
func (e *Elements) TicketStatusDropdown(ctx context.Context, name string, selected any) (string, error) {
	if e.statuses == nil {
		return "", ErrNoStatusSource
	}
	statuses, err := e.statuses.TicketStatuses(ctx)
	if err != nil {
		return "", fmt.Errorf("elements: load ticket statuses: %w", err)
	}

	options := make(Options, 0, len(statuses))
	for _, status := range statuses {
		options = options.Add(status.Name, status.Label)
	}

	return e.Select(SelectConfig{
		Name:     pick(name, DefaultStatusName),
		Selected: Select(selected),
		Options:  options,
		ShowAll:  Hide(),
		ShowNone: Hide(),
	})
}

// TicketCategoryDropdown renders the ticket category terms with an
// "All <plural>" option.
func (e *Elements) TicketCategoryDropdown(ctx context.Context, name string, selected any) (string, error) {
	return e.categoryDropdown(ctx, TaxonomyTicketCategory, pick(name, DefaultTicketCategoryName), selected)
}

// ArticleCategoryDropdown renders the knowledge base article category terms
// with an "All <plural>" option.
func (e *Elements) ArticleCategoryDropdown(ctx context.Context, name string, selected any) (string, error) {
	return e.categoryDropdown(ctx, TaxonomyArticleCategory, pick(name, DefaultArticleCategoryName), selected)
}

func (e *Elements) categoryDropdown(ctx context.Context, taxonomy, name string, selected any) (string, error) {
	if e.terms == nil {
		return "", ErrNoTermSource
	}
	terms, err := e.terms.Terms(ctx, taxonomy)
	if err != nil {
		return "", fmt.Errorf("elements: load %s terms: %w", taxonomy, err)
	}

	options := make(Options, 0, len(terms))
	for _, term := range terms {
		options = options.Add(strconv.Itoa(absInt(term.ID)), term.Name)
	}

	if selected == nil {
		selected = 0
	}
	labels := e.labels.TaxonomyLabels(taxonomy)
	return e.Select(SelectConfig{
		Name:     name,
		Selected: Select(selected),
		Options:  options,
		ShowAll:  ShowAs(e.tr("All %s", labels.Plural)),
		ShowNone: Hide(),
	})
}

// YearOptions lists the years from yearsBefore years ago to yearsAfter years
// ahead of now, ascending. Negative spans count as their absolute value and
// each side is capped at MaxYearSpan.
func YearOptions(now time.Time, yearsBefore, yearsAfter int) Options {
	before, _ := yearSpan(yearsBefore)
	after, _ := yearSpan(yearsAfter)
	current := now.Year()
	start := current - before
	end := current + after

	options := make(Options, 0, end-start+1)
	for year := start; year <= end; year++ {
		key := strconv.Itoa(year)
		options = options.Add(key, key)
	}
	return options
}

// YearDropdown renders a year range. An empty selection selects the current
// year.
func (e *Elements) YearDropdown(name string, selected any, yearsBefore, yearsAfter int) (string, error) {
	for _, span := range []int{yearsBefore, yearsAfter} {
		if _, ok := yearSpan(span); ok {
			continue
		}
		if e.mode == ModeStrict {
			return "", fmt.Errorf("elements: year %q span %d: %w", name, span, ErrYearSpan)
		}
		e.logger.Debug("year span capped", zap.String("name", name), zap.Int("span", span))
	}

	now := e.clock.Now()
	if isEmptyValue(selected) {
		selected = now.Year()
	}
	return e.Select(SelectConfig{
		Name:     pick(name, DefaultYearName),
		Selected: Select(selected),
		Options:  YearOptions(now, yearsBefore, yearsAfter),
		ShowAll:  Hide(),
		ShowNone: Hide(),
	})
}

// MonthOptions lists months 1..12 labelled by translated month names.
func (e *Elements) MonthOptions() Options {
	options := make(Options, 0, 12)
	for month := time.January; month <= time.December; month++ {
		options = options.Add(strconv.Itoa(int(month)), e.tr(month.String()))
	}
	return options
}

// MonthDropdown renders the twelve months. An empty selection selects the
// current month.
func (e *Elements) MonthDropdown(name string, selected any) (string, error) {
	if isEmptyValue(selected) {
		selected = int(e.clock.Now().Month())
	}
	return e.Select(SelectConfig{
		Name:     pick(name, DefaultMonthName),
		Selected: Select(selected),
		Options:  e.MonthOptions(),
		ShowAll:  Hide(),
		ShowNone: Hide(),
	})
}

// yearSpan returns the absolute span capped at MaxYearSpan and whether it was
// already within range.
func yearSpan(v int) (int, bool) {
	if v < -MaxYearSpan || v > MaxYearSpan {
		return MaxYearSpan, false
	}
	return absInt(v), true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
