package dashboard

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-kbs-elements/components/internal/httpguard"
	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/render"
)

const (
	DefaultRoutePath    = "/api/dashboard/tickets"
	DefaultPopularLimit = 5
	DefaultTicketLabel  = "Ticket"
	DefaultArticleLabel = "Articles"
	DefaultArticlesURL  = "edit.php?post_type=article"
	DefaultLoaderSrc    = "assets/images/loading.gif"
)

type (
	GuardFunc   = httpguard.GuardFunc
	HTTPError   = httpguard.HTTPError
	StatusError = httpguard.StatusError
	Mux         = httpguard.Mux
)

type Options struct {
	RoutePath string
	Guard     GuardFunc

	Stats        StatsSource
	Statuses     StatusKeySource
	Articles     ArticleSource
	PopularLimit int

	Translator render.Translator
	Locale     string
	// Domain scopes translations; defaults to elements.TextDomain.
	Domain string

	TicketLabel  string
	ArticleLabel string
	ArticlesURL  string
	LoaderSrc    string

	Logger *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    DefaultRoutePath,
		PopularLimit: DefaultPopularLimit,
		Domain:       elements.TextDomain,
		TicketLabel:  DefaultTicketLabel,
		ArticleLabel: DefaultArticleLabel,
		ArticlesURL:  DefaultArticlesURL,
		LoaderSrc:    DefaultLoaderSrc,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.PopularLimit < 0 {
		opts.PopularLimit = 0
	}
	if opts.Domain == "" {
		opts.Domain = elements.TextDomain
	}
	if opts.TicketLabel == "" {
		opts.TicketLabel = DefaultTicketLabel
	}
	if opts.ArticleLabel == "" {
		opts.ArticleLabel = DefaultArticleLabel
	}
	if opts.ArticlesURL == "" {
		opts.ArticlesURL = DefaultArticlesURL
	}
	if opts.LoaderSrc == "" {
		opts.LoaderSrc = DefaultLoaderSrc
	}
	opts.Locale = render.NormalizeLocale(opts.Locale)
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithStats sets the ticket counter. If it also implements TotalsSource the
// current status table is shown.
func WithStats(stats StatsSource) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Stats = stats
	}
}

func WithStatusKeys(statuses StatusKeySource) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Statuses = statuses
	}
}

// WithPopularArticles enables the popular articles table. A limit of zero
// hides it.
func WithPopularArticles(articles ArticleSource, limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Articles = articles
		o.PopularLimit = limit
	}
}

func WithTranslator(t render.Translator, locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
		o.Locale = locale
	}
}

func WithLabels(ticketSingular, articlePlural string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.TicketLabel = ticketSingular
		o.ArticleLabel = articlePlural
	}
}

func WithArticlesURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ArticlesURL = url
	}
}

func WithLoaderSrc(src string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LoaderSrc = src
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
