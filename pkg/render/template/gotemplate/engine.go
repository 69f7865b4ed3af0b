// Package gotemplate renders dashboard fragments and screen layouts with
// github.com/goliatone/go-template (pongo2 syntax).
package gotemplate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"maps"

	gotpl "github.com/goliatone/go-template"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/render"
)

type config struct {
	files fs.FS
	funcs map[string]any
}

// Option configures the engine.
type Option func(*config)

// WithFS sets the file system templates are loaded from. Names passed to
// RenderTemplate resolve to <name>.tpl inside it.
func WithFS(files fs.FS) Option {
	return func(c *config) {
		c.files = files
	}
}

// WithTemplateFunc registers template globals.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(c *config) {
		maps.Copy(c.funcs, funcs)
	}
}

// WithElements exposes the kbs_* control helpers backed by e.
func WithElements(e *elements.Elements) Option {
	return func(c *config) {
		if e != nil {
			maps.Copy(c.funcs, elements.TemplateFuncs(e))
		}
	}
}

// WithTranslator exposes translate(locale, key, ...args) for domain.
func WithTranslator(t render.Translator, domain string) Option {
	return func(c *config) {
		maps.Copy(c.funcs, render.TranslateFuncs(t, domain, nil))
	}
}

// Engine implements template.TemplateRenderer.
type Engine struct {
	renderer *gotpl.Engine
}

// New builds an engine. A template file system is required, use an empty
// fstest.MapFS when only RenderString is needed.
func New(opts ...Option) (*Engine, error) {
	cfg := config{funcs: make(map[string]any)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var renderOpts []gotpl.Option
	if cfg.files != nil {
		renderOpts = append(renderOpts, gotpl.WithFS(cfg.files))
	}
	if len(cfg.funcs) > 0 {
		renderOpts = append(renderOpts, gotpl.WithTemplateFunc(cfg.funcs))
	}

	renderer, err := gotpl.NewRenderer(renderOpts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: %w", err)
	}
	renderer.RegisterPreHook(plainData)

	return &Engine{renderer: renderer}, nil
}

// RenderTemplate executes the named template file.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	return e.renderer.RenderTemplate(name, data, out...)
}

// RenderString parses and executes templateContent.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return e.renderer.RenderString(templateContent, data, out...)
}

// plainData flattens data to JSON values before the renderer builds its
// context. Numbers keep their JSON text so 42 prints as "42" rather than
// pongo2's "42.000000"; templates doing arithmetic apply |integer or |float.
func plainData(ctx *gotpl.HookContext) error {
	if ctx.Data == nil {
		return nil
	}

	raw, err := json.Marshal(ctx.Data)
	if err != nil {
		return fmt.Errorf("gotemplate: template data: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return fmt.Errorf("gotemplate: template data must be an object: %w", err)
	}
	ctx.Data = numbersAsText(data)
	return nil
}

func numbersAsText(value any) any {
	switch v := value.(type) {
	case json.Number:
		return v.String()
	case map[string]any:
		for key, item := range v {
			v[key] = numbersAsText(item)
		}
		return v
	case []any:
		for idx, item := range v {
			v[idx] = numbersAsText(item)
		}
		return v
	default:
		return v
	}
}
