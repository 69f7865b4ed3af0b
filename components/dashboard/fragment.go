package dashboard

import (
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/render"
	"github.com/goliatone/go-kbs-elements/pkg/render/template"
	"github.com/goliatone/go-kbs-elements/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const summaryTemplate = "summary"

// Renderer turns a Summary into the widget fragment.
type Renderer struct {
	opts    Options
	engine  template.TemplateRenderer
	printer *message.Printer
}

// NewRenderer prepares the template engine with the translation helpers.
func NewRenderer(opts Options) (*Renderer, error) {
	opts = NewOptions(func(o *Options) { *o = opts })

	files, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("dashboard: templates: %w", err)
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithTranslator(opts.Translator, opts.Domain),
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard: template engine: %w", err)
	}

	return &Renderer{
		opts:    opts,
		engine:  engine,
		printer: message.NewPrinter(localeTag(opts.Locale)),
	}, nil
}

// Title is the widget heading, e.g. "KB Support Ticket Summary".
func (r *Renderer) Title() string {
	return r.tr("KB Support %s Summary", r.opts.TicketLabel)
}

// Render executes the summary template.
func (r *Renderer) Render(summary Summary) (string, error) {
	data := map[string]any{
		"locale":     r.opts.Locale,
		"this_month": r.counts(summary.ThisMonth),
		"last_month": r.counts(summary.LastMonth),
		"today":      r.counts(summary.Today),
	}
	if summary.Totals != nil {
		data["totals"] = map[string]any{
			"open":          r.number(summary.Totals.Open),
			"agents_online": r.number(summary.Totals.AgentsOnline),
		}
	}
	if len(summary.Articles) > 0 {
		articles := make([]any, 0, len(summary.Articles))
		for _, article := range summary.Articles {
			articles = append(articles, map[string]any{
				"title": article.Title,
				"url":   safeURL(article.URL),
				"views": r.views(article.Views),
			})
		}
		data["articles"] = articles
		data["articles_title"] = r.tr("Most Popular %s", r.opts.ArticleLabel)
		data["articles_url"] = safeURL(r.opts.ArticlesURL)
	}

	out, err := r.engine.RenderTemplate(summaryTemplate, data)
	if err != nil {
		return "", fmt.Errorf("dashboard: render summary: %w", err)
	}
	return out, nil
}

// Placeholder is the loader markup shown until the fragment arrives.
func (r *Renderer) Placeholder() string {
	return Placeholder(r.opts.LoaderSrc)
}

// Placeholder renders the loader image for src.
func Placeholder(src string) string {
	return `<p><img src="` + elements.EscapeAttribute(safeURL(src)) + `"/></p>`
}

func (r *Renderer) tr(key string, args ...any) string {
	return render.Lookup(r.opts.Translator, r.opts.Locale, r.opts.Domain, key, nil, args...)
}

func (r *Renderer) views(n int) string {
	key := "(%s views)"
	if n == 1 {
		key = "(%s view)"
	}
	return r.tr(key, r.number(n))
}

func (r *Renderer) counts(c Counts) map[string]any {
	return map[string]any{"opened": r.number(c.Opened), "closed": r.number(c.Closed)}
}

// number formats n with the locale's digit grouping.
func (r *Renderer) number(n int) string {
	return r.printer.Sprintf("%d", n)
}

func localeTag(locale string) language.Tag {
	if tag, err := language.Parse(locale); err == nil {
		return tag
	}
	return language.English
}

// safeURL keeps relative and http(s) links; anything else becomes "#".
func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return raw
	default:
		return "#"
	}
}
