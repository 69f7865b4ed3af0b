// Package dashboard renders the ticket summary widget: opened and closed
// counts for the current month, last month and today, optional current totals
// and the most popular articles.
//
// The widget is loaded in two steps. Placeholder renders the loader image
// shown on first paint and the handler returns the summary fragment that
// replaces it.
package dashboard
