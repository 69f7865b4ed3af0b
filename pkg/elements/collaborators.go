package elements

import (
	"context"
	"time"
)

// Status is a ticket status as exposed by the host.
type Status struct {
	Name  string
	Label string
}

// StatusSource lists the registered ticket statuses in display order.
type StatusSource interface {
	TicketStatuses(ctx context.Context) ([]Status, error)
}

// Term is a taxonomy term.
type Term struct {
	ID   int
	Name string
}

// TermSource returns the terms of a taxonomy in display order.
type TermSource interface {
	Terms(ctx context.Context, taxonomy string) ([]Term, error)
}

// TermSourceFunc adapts a function into a TermSource.
type TermSourceFunc func(ctx context.Context, taxonomy string) ([]Term, error)

// Terms implements TermSource.
func (fn TermSourceFunc) Terms(ctx context.Context, taxonomy string) ([]Term, error) {
	return fn(ctx, taxonomy)
}

// TaxonomyLabels are the display names for a taxonomy.
type TaxonomyLabels struct {
	Singular string
	Plural   string
}

// LabelSource resolves display names for taxonomies.
type LabelSource interface {
	TaxonomyLabels(taxonomy string) TaxonomyLabels
}

// Taxonomies used by the category dropdowns.
const (
	TaxonomyTicketCategory  = "ticket_category"
	TaxonomyArticleCategory = "article_category"
)

// DefaultLabels supplies the stock English category labels.
type DefaultLabels struct{}

// TaxonomyLabels implements LabelSource.
func (DefaultLabels) TaxonomyLabels(string) TaxonomyLabels {
	return TaxonomyLabels{Singular: "Category", Plural: "Categories"}
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function into a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (fn ClockFunc) Now() time.Time { return fn() }
