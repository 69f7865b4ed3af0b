package dashboard

import "net/http"

// Component bundles the widget renderer, its handler and routing helpers.
type Component struct {
	opts     Options
	renderer *Renderer
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)
	renderer, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	return &Component{opts: opts, renderer: renderer}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Title is the translated widget heading.
func (c *Component) Title() string { return c.renderer.Title() }

// Placeholder is the loader markup shown before the fragment loads.
func (c *Component) Placeholder() string { return c.renderer.Placeholder() }

// Handler returns the fragment handler.
func (c *Component) Handler() (http.Handler, error) {
	return HandlerWithOptions(c.opts)
}

// RegisterRoutes registers the fragment handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
