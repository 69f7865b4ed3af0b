package main

import (
	"context"
	"sort"

	"github.com/goliatone/go-kbs-elements/components/dashboard"
	"github.com/goliatone/go-kbs-elements/components/usersearch"
	"github.com/goliatone/go-kbs-elements/pkg/elements"
)

// demoData backs the bundled screens and widgets with fixed in-memory data.
type demoData struct {
	statuses []elements.Status
	terms    map[string][]elements.Term
	tickets  map[dashboard.Period]map[string]int
	articles []dashboard.Article
	users    []usersearch.User
}

func newDemoData() *demoData {
	return &demoData{
		statuses: []elements.Status{
			{Name: "new", Label: "New"},
			{Name: "open", Label: "Open"},
			{Name: "hold", Label: "On Hold"},
			{Name: "closed", Label: "Closed"},
		},
		terms: map[string][]elements.Term{
			elements.TaxonomyTicketCategory: {
				{ID: 3, Name: "Billing"},
				{ID: 7, Name: "Hardware"},
			},
			elements.TaxonomyArticleCategory: {
				{ID: 11, Name: "Getting started"},
			},
		},
		tickets: map[dashboard.Period]map[string]int{
			dashboard.PeriodToday:     {"new": 2, "open": 1, "closed": 1},
			dashboard.PeriodThisMonth: {"new": 14, "open": 9, "hold": 2, "closed": 21},
			dashboard.PeriodLastMonth: {"new": 3, "open": 30, "closed": 28},
		},
		articles: []dashboard.Article{
			{Title: "Resetting your password", URL: "/articles/reset-password", Views: 1289},
			{Title: "Printer troubleshooting", URL: "/articles/printers", Views: 311},
		},
		users: []usersearch.User{
			{ID: 1, Login: "ada", DisplayName: "Ada Lovelace", Email: "ada@example.com"},
			{ID: 2, Login: "grace", DisplayName: "Grace Hopper", Email: "grace@example.com"},
			{ID: 3, Login: "alan", DisplayName: "Alan Turing"},
		},
	}
}

func (d *demoData) TicketStatuses(context.Context) ([]elements.Status, error) {
	return append([]elements.Status(nil), d.statuses...), nil
}

func (d *demoData) Terms(_ context.Context, taxonomy string) ([]elements.Term, error) {
	return append([]elements.Term(nil), d.terms[taxonomy]...), nil
}

func (d *demoData) ActiveStatusKeys(context.Context) ([]string, error) {
	keys := make([]string, 0, len(d.statuses))
	for _, status := range d.statuses {
		keys = append(keys, status.Name)
	}
	return keys, nil
}

func (d *demoData) Tickets(_ context.Context, period dashboard.Period, statuses []string) (int, error) {
	total := 0
	for _, status := range statuses {
		total += d.tickets[period][status]
	}
	return total, nil
}

func (d *demoData) OpenTicketCount(context.Context) (int, error) {
	count := 0
	for _, byStatus := range d.tickets {
		for status, n := range byStatus {
			if status != dashboard.ClosedStatus {
				count += n
			}
		}
	}
	return count, nil
}

func (d *demoData) OnlineAgentCount(context.Context) (int, error) { return 2, nil }

func (d *demoData) PopularArticles(_ context.Context, limit int) ([]dashboard.Article, error) {
	articles := append([]dashboard.Article(nil), d.articles...)
	sort.SliceStable(articles, func(i, j int) bool { return articles[i].Views > articles[j].Views })
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (d *demoData) directory() *usersearch.StaticDirectory {
	return usersearch.NewStaticDirectory(d.users)
}
