package usersearch

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-kbs-elements/components/internal/httpguard"
)

const (
	DefaultRoutePath      = "/api/users/search"
	DefaultSearchParam    = "search"
	DefaultLimitParam     = "limit"
	DefaultLimit          = 10
	DefaultMaxLimit       = 50
	DefaultMinQueryLength = 1
)

type (
	GuardFunc   = httpguard.GuardFunc
	HTTPError   = httpguard.HTTPError
	StatusError = httpguard.StatusError
)

type Options struct {
	RoutePath    string
	SearchParam  string
	LimitParam   string
	DefaultLimit int
	MaxLimit     int
	// MinQueryLength is the rune count below which a query returns nothing.
	MinQueryLength int
	Guard          GuardFunc
	Directory      Directory
	Logger         *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:      DefaultRoutePath,
		SearchParam:    DefaultSearchParam,
		LimitParam:     DefaultLimitParam,
		DefaultLimit:   DefaultLimit,
		MaxLimit:       DefaultMaxLimit,
		MinQueryLength: DefaultMinQueryLength,
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
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = DefaultMaxLimit
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = DefaultMinQueryLength
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = DefaultSearchParam
	}
	if opts.LimitParam == "" {
		opts.LimitParam = DefaultLimitParam
	}
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

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithMinQueryLength(n int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MinQueryLength = n
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

func WithDirectory(dir Directory) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Directory = dir
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

// clampLimit applies the default for zero and caps at MaxLimit. Negative
// limits yield zero.
func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
