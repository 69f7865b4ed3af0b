package controls

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/render/template"
)

// Render renders every control in order inside the screen wrapper.
func (s Screen) Render(ctx context.Context, e *elements.Elements) (string, error) {
	var builder strings.Builder
	builder.WriteString(`<div class="kbs-screen" id="`)
	builder.WriteString(elements.EscapeAttribute(wrapperID(s.ID)))
	builder.WriteString(`">`)
	for idx, control := range s.Controls {
		out, err := control.Render(ctx, e)
		if err != nil {
			return "", fmt.Errorf("controls: screen %q control %d (%s): %w", s.ID, idx, control.Kind, err)
		}
		builder.WriteString(out)
	}
	hidden, err := e.HiddenFields(s.Hidden)
	if err != nil {
		return "", fmt.Errorf("controls: screen %q hidden fields: %w", s.ID, err)
	}
	builder.WriteString(hidden)
	builder.WriteString(`</div>`)
	return builder.String(), nil
}

// RenderLayout renders the controls and hands them to the screen's layout
// template as controls.<name> (or controls.<kind> for unnamed controls) and
// the screen's hidden inputs as hidden. Rendered markup must be emitted with
// the safe filter. Screens without a layout fall back to Render.
func (s Screen) RenderLayout(ctx context.Context, e *elements.Elements, engine template.TemplateRenderer) (string, error) {
	if strings.TrimSpace(s.Layout) == "" || engine == nil {
		return s.Render(ctx, e)
	}

	rendered := make(map[string]any, len(s.Controls))
	for idx, control := range s.Controls {
		out, err := control.Render(ctx, e)
		if err != nil {
			return "", fmt.Errorf("controls: screen %q control %d (%s): %w", s.ID, idx, control.Kind, err)
		}
		rendered[control.key()] = out
	}

	hidden, err := e.HiddenFields(s.Hidden)
	if err != nil {
		return "", fmt.Errorf("controls: screen %q hidden fields: %w", s.ID, err)
	}

	out, err := engine.RenderString(s.Layout, map[string]any{
		"screen":   map[string]any{"id": s.ID, "title": s.Title},
		"controls": rendered,
		"hidden":   hidden,
	})
	if err != nil {
		return "", fmt.Errorf("controls: screen %q layout: %w", s.ID, err)
	}
	return out, nil
}

// Render renders a single control.
func (c Control) Render(ctx context.Context, e *elements.Elements) (string, error) {
	switch c.Kind {
	case KindSelect:
		return e.Select(elements.SelectConfig{
			Name:        c.Name,
			ID:          c.ID,
			Class:       c.Class,
			Options:     c.Options,
			Selected:    selection(c.Selected),
			Chosen:      c.Chosen,
			Placeholder: c.Placeholder,
			Multiple:    c.Multiple,
			ShowAll:     flag(c.ShowAll),
			ShowNone:    flag(c.ShowNone),
			Data:        elements.DataFromMap(c.Data),
		})
	case KindCheckbox:
		return e.Checkbox(elements.CheckboxConfig{
			Name:     c.Name,
			ID:       c.ID,
			Class:    c.Class,
			Current:  c.Value,
			Disabled: c.Disabled,
			Readonly: c.Readonly,
			Data:     elements.DataFromMap(c.Data),
		})
	case KindCheckboxList:
		return e.CheckboxList(elements.CheckboxListConfig{
			Name:     c.Name,
			ID:       c.ID,
			Class:    c.Class,
			LabelPos: c.LabelPos,
			Options:  c.Options,
			Current:  selection(c.current()),
			Disabled: c.Disabled,
		})
	case KindRadio:
		return e.Radio(elements.RadioConfig{
			Name:     c.Name,
			ID:       c.ID,
			Class:    c.Class,
			LabelPos: c.LabelPos,
			Options:  c.Options,
			Current:  c.current(),
			Disabled: c.Disabled,
		})
	case KindText, KindDate:
		cfg := elements.TextConfig{
			Name:            c.Name,
			ID:              c.ID,
			Value:           elements.FormatValue(c.Value),
			Label:           c.Label,
			Description:     c.Description,
			DescriptionHTML: c.DescriptionHTML,
			Placeholder:     c.Placeholder,
			Class:           c.Class,
			Disabled:        c.Disabled,
			Autocomplete:    c.Autocomplete,
			Data:            elements.DataFromMap(c.Data),
		}
		if c.Kind == KindDate {
			return e.DateField(cfg)
		}
		return e.Text(cfg)
	case KindNumber:
		return e.Number(elements.NumberConfig{
			Name:            c.Name,
			ID:              c.ID,
			Value:           elements.FormatValue(c.Value),
			Label:           c.Label,
			Description:     c.Description,
			DescriptionHTML: c.DescriptionHTML,
			Placeholder:     c.Placeholder,
			Class:           c.Class,
			Min:             c.Min,
			Max:             c.Max,
			Disabled:        c.Disabled,
			Autocomplete:    c.Autocomplete,
			Data:            elements.DataFromMap(c.Data),
		})
	case KindHidden:
		return e.Hidden(elements.HiddenConfig{
			Name:  c.Name,
			ID:    c.ID,
			Value: elements.FormatValue(c.Value),
		})
	case KindTextarea:
		return e.Textarea(elements.TextareaConfig{
			Name:            c.Name,
			ID:              c.ID,
			Value:           elements.FormatValue(c.Value),
			Label:           c.Label,
			Description:     c.Description,
			DescriptionHTML: c.DescriptionHTML,
			Placeholder:     c.Placeholder,
			Class:           c.Class,
			Disabled:        c.Disabled,
		})
	case KindUserSearch:
		return e.UserSearch(elements.UserSearchConfig{
			Name:         c.Name,
			ID:           c.ID,
			Value:        elements.FormatValue(c.Value),
			Label:        c.Label,
			Description:  c.Description,
			Placeholder:  c.Placeholder,
			Class:        c.Class,
			Disabled:     c.Disabled,
			Autocomplete: c.Autocomplete,
			Data:         elements.DataFromMap(c.Data),
		})
	case KindStatusDropdown:
		return e.TicketStatusDropdown(ctx, c.Name, c.current())
	case KindTicketCategories:
		return e.TicketCategoryDropdown(ctx, c.Name, c.current())
	case KindArticleCategories:
		return e.ArticleCategoryDropdown(ctx, c.Name, c.current())
	case KindYear:
		before := elements.DefaultYearsBefore
		if c.YearsBefore != nil {
			before = *c.YearsBefore
		}
		return e.YearDropdown(c.Name, c.current(), before, c.YearsAfter)
	case KindMonth:
		return e.MonthDropdown(c.Name, c.current())
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
}

// current prefers Selected and falls back to Value.
func (c Control) current() any {
	if c.Selected != nil {
		return c.Selected
	}
	return c.Value
}

func (c Control) key() string {
	if c.Name != "" {
		return c.Name
	}
	return string(c.Kind)
}

func selection(value any) elements.Selection {
	if value == nil {
		return elements.Selection{}
	}
	return elements.Select(value)
}

func flag(label *string) elements.Flag {
	switch {
	case label == nil:
		return elements.Flag{}
	case *label == "":
		return elements.Hide()
	default:
		return elements.ShowAs(*label)
	}
}

func wrapperID(id string) string {
	return "kbs-screen-" + elements.SanitizeIdentifier(id)
}
