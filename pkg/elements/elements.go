package elements

import (
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-kbs-elements/pkg/render"
)

// TextDomain is the catalog domain static labels are looked up in.
const TextDomain = "kb-support"

// DefaultNumberCeiling caps the max attribute of number inputs unless
// overridden with WithNumberCeiling.
const DefaultNumberCeiling = 5

// Mode controls how invalid identifiers are handled.
type Mode int

const (
	// ModeLenient renders empty attributes for unusable identifiers.
	ModeLenient Mode = iota
	// ModeStrict fails the render with ErrInvalidIdentifier.
	ModeStrict
)

// Option configures an Elements instance.
type Option func(*Elements)

// Elements renders form controls. Construct it with New; the zero value is not
// usable.
type Elements struct {
	translator    render.Translator
	locale        string
	domain        string
	onMissing     render.MissingTranslationHandler
	clock         Clock
	statuses      StatusSource
	terms         TermSource
	labels        LabelSource
	mode          Mode
	numberCeiling int
	lineBreak     string
	logger        *zap.Logger
	policy        *bluemonday.Policy
}

// New constructs an Elements renderer applying opts over the defaults.
func New(opts ...Option) *Elements {
	e := &Elements{
		domain:        TextDomain,
		clock:         ClockFunc(time.Now),
		labels:        DefaultLabels{},
		mode:          ModeLenient,
		numberCeiling: DefaultNumberCeiling,
		lineBreak:     "\r\n",
		logger:        zap.NewNop(),
		policy:        descriptionPolicy(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// WithTranslator sets the translator and locale used for static labels.
func WithTranslator(t render.Translator, locale string) Option {
	return func(e *Elements) {
		e.translator = t
		e.locale = render.NormalizeLocale(locale)
	}
}

// WithTextDomain overrides the catalog domain (default TextDomain).
func WithTextDomain(domain string) Option {
	return func(e *Elements) {
		if domain != "" {
			e.domain = domain
		}
	}
}

// WithMissingTranslationHandler customises translation misses.
func WithMissingTranslationHandler(fn render.MissingTranslationHandler) Option {
	return func(e *Elements) {
		e.onMissing = fn
	}
}

// WithClock overrides the time source used by the year and month dropdowns.
func WithClock(clock Clock) Option {
	return func(e *Elements) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithStatusSource wires the ticket status lookup.
func WithStatusSource(src StatusSource) Option {
	return func(e *Elements) {
		e.statuses = src
	}
}

// WithTermSource wires the taxonomy term lookup.
func WithTermSource(src TermSource) Option {
	return func(e *Elements) {
		e.terms = src
	}
}

// WithLabelSource wires singular/plural taxonomy labels.
func WithLabelSource(src LabelSource) Option {
	return func(e *Elements) {
		if src != nil {
			e.labels = src
		}
	}
}

// WithMode selects lenient or strict identifier handling.
func WithMode(mode Mode) Option {
	return func(e *Elements) {
		e.mode = mode
	}
}

// WithNumberCeiling sets the upper bound for number max attributes. Zero or a
// negative value disables clamping.
func WithNumberCeiling(ceiling int) Option {
	return func(e *Elements) {
		e.numberCeiling = ceiling
	}
}

// WithLineBreak sets the terminator written after each select line.
func WithLineBreak(lb string) Option {
	return func(e *Elements) {
		e.lineBreak = lb
	}
}

// WithLogger attaches a zap logger; degraded renders are logged at debug.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Elements) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// tr translates a static label. Escaping happens later, at output.
func (e *Elements) tr(text string, args ...any) string {
	return render.Lookup(e.translator, e.locale, e.domain, text, e.onMissing, args...)
}

// controlID resolves the id for a control and applies the identifier policy.
func (e *Elements) controlID(kind, id, name string) (string, error) {
	resolved := ControlID(id, name)
	if resolved != "" {
		return resolved, nil
	}
	if e.mode == ModeStrict {
		return "", fmt.Errorf("elements: %s %q: %w", kind, name, ErrInvalidIdentifier)
	}
	e.logger.Debug("control rendered without usable id",
		zap.String("control", kind),
		zap.String("name", name),
	)
	return "", nil
}
