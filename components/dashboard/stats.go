package dashboard

import (
	"context"
	"errors"
	"fmt"
)

// Period selects the date range a ticket count covers.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
)

// ClosedStatus is the status key counted as closed.
const ClosedStatus = "closed"

var (
	ErrNoStatsSource  = errors.New("dashboard: no stats source configured")
	ErrNoStatusSource = errors.New("dashboard: no status key source configured")
)

// StatsSource counts tickets created in period whose status is one of
// statuses.
type StatsSource interface {
	Tickets(ctx context.Context, period Period, statuses []string) (int, error)
}

// StatusKeySource lists the active ticket status keys.
type StatusKeySource interface {
	ActiveStatusKeys(ctx context.Context) ([]string, error)
}

// TotalsSource is optionally implemented by a StatsSource to fill the
// current status table.
type TotalsSource interface {
	OpenTicketCount(ctx context.Context) (int, error)
	OnlineAgentCount(ctx context.Context) (int, error)
}

// Article is a popular knowledge base article.
type Article struct {
	Title string
	URL   string
	Views int
}

// ArticleSource lists the most viewed articles, best first.
type ArticleSource interface {
	PopularArticles(ctx context.Context, limit int) ([]Article, error)
}

// Counts is an opened/closed pair.
type Counts struct {
	Opened int
	Closed int
}

// Totals is the current status table.
type Totals struct {
	Open         int
	AgentsOnline int
}

// Summary holds everything the widget displays.
type Summary struct {
	ThisMonth Counts
	LastMonth Counts
	Today     Counts
	Totals    *Totals
	Articles  []Article
}

// Collect gathers a Summary. Opened counts cover every active status except
// closed.
func Collect(ctx context.Context, opts Options) (Summary, error) {
	if opts.Stats == nil {
		return Summary{}, ErrNoStatsSource
	}
	if opts.Statuses == nil {
		return Summary{}, ErrNoStatusSource
	}

	keys, err := opts.Statuses.ActiveStatusKeys(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard: active statuses: %w", err)
	}
	open := OpenStatuses(keys)

	var summary Summary
	periods := []struct {
		period Period
		into   *Counts
	}{
		{PeriodThisMonth, &summary.ThisMonth},
		{PeriodLastMonth, &summary.LastMonth},
		{PeriodToday, &summary.Today},
	}
	for _, p := range periods {
		if p.into.Opened, err = opts.Stats.Tickets(ctx, p.period, open); err != nil {
			return Summary{}, fmt.Errorf("dashboard: %s opened: %w", p.period, err)
		}
		if p.into.Closed, err = opts.Stats.Tickets(ctx, p.period, []string{ClosedStatus}); err != nil {
			return Summary{}, fmt.Errorf("dashboard: %s closed: %w", p.period, err)
		}
	}

	if totals, ok := opts.Stats.(TotalsSource); ok {
		var t Totals
		if t.Open, err = totals.OpenTicketCount(ctx); err != nil {
			return Summary{}, fmt.Errorf("dashboard: open tickets: %w", err)
		}
		if t.AgentsOnline, err = totals.OnlineAgentCount(ctx); err != nil {
			return Summary{}, fmt.Errorf("dashboard: online agents: %w", err)
		}
		summary.Totals = &t
	}

	if opts.Articles != nil && opts.PopularLimit > 0 {
		articles, err := opts.Articles.PopularArticles(ctx, opts.PopularLimit)
		if err != nil {
			return Summary{}, fmt.Errorf("dashboard: popular articles: %w", err)
		}
		if len(articles) > opts.PopularLimit {
			articles = articles[:opts.PopularLimit]
		}
		summary.Articles = articles
	}

	return summary, nil
}

// OpenStatuses drops the closed status from keys, keeping order.
func OpenStatuses(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == ClosedStatus {
			continue
		}
		out = append(out, key)
	}
	return out
}
