package elements

import (
	"context"

	"github.com/flosch/pongo2/v6"
	"go.uber.org/zap"
)

// TemplateFuncs exposes a subset of the renderers as pongo2 template helpers.
// Output is marked safe since it is already escaped. Render failures are
// logged and produce an empty string.
//
//	{{ kbs_year_dropdown("year", 0) }}
//	{{ kbs_text("subject", ticket.subject, "Subject") }}
func TemplateFuncs(e *Elements) map[string]any {
	safe := func(kind string, markup string, err error) *pongo2.Value {
		if err != nil {
			e.logger.Warn("template helper failed", zap.String("control", kind), zap.Error(err))
			return pongo2.AsSafeValue("")
		}
		return pongo2.AsSafeValue(markup)
	}

	return map[string]any{
		"kbs_select": func(name string, options any, selected any) *pongo2.Value {
			out, err := e.Select(SelectConfig{Name: name, Options: optionsFrom(options), Selected: Select(selected)})
			return safe("select", out, err)
		},
		"kbs_hidden": func(name string, value any) *pongo2.Value {
			out, err := e.Hidden(HiddenConfig{Name: name, Value: keyString(value)})
			return safe("hidden", out, err)
		},
		"kbs_hidden_fields": func(fields any) *pongo2.Value {
			out, err := e.HiddenFields(hiddenFrom(fields))
			return safe("hidden_fields", out, err)
		},
		"kbs_text": func(name string, value any, label string) *pongo2.Value {
			out, err := e.Text(TextConfig{Name: name, Value: keyString(value), Label: label})
			return safe("text", out, err)
		},
		"kbs_textarea": func(name string, value any, label string) *pongo2.Value {
			out, err := e.Textarea(TextareaConfig{Name: name, Value: keyString(value), Label: label})
			return safe("textarea", out, err)
		},
		"kbs_date_field": func(name string, value any, label string) *pongo2.Value {
			out, err := e.DateField(TextConfig{Name: name, Value: keyString(value), Label: label})
			return safe("date", out, err)
		},
		"kbs_checkbox": func(name string, current any) *pongo2.Value {
			out, err := e.Checkbox(CheckboxConfig{Name: name, Current: current})
			return safe("checkbox", out, err)
		},
		"kbs_user_search": func(name string, value any) *pongo2.Value {
			out, err := e.UserSearch(UserSearchConfig{Name: name, Value: keyString(value)})
			return safe("user_search", out, err)
		},
		"kbs_year_dropdown": func(name string, selected any) *pongo2.Value {
			out, err := e.YearDropdown(name, selected, DefaultYearsBefore, 0)
			return safe("year", out, err)
		},
		"kbs_month_dropdown": func(name string, selected any) *pongo2.Value {
			out, err := e.MonthDropdown(name, selected)
			return safe("month", out, err)
		},
		"kbs_status_dropdown": func(name string, selected any) *pongo2.Value {
			out, err := e.TicketStatusDropdown(context.Background(), name, selected)
			return safe("status", out, err)
		},
	}
}

// optionsFrom accepts the option shapes templates can build: a list of
// {key, label} maps, a list of scalars, or a map (sorted by key).
func optionsFrom(value any) Options {
	switch v := value.(type) {
	case Options:
		return v
	case []any:
		out := make(Options, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				key := keyString(m["key"])
				label := keyString(m["label"])
				if label == "" {
					label = key
				}
				out = out.Add(key, label)
				continue
			}
			key := keyString(item)
			out = out.Add(key, key)
		}
		return out
	case map[string]any:
		values := make(map[string]string, len(v))
		for key, label := range v {
			values[key] = keyString(label)
		}
		return OptionsFromMap(values, nil)
	case map[string]string:
		return OptionsFromMap(v, nil)
	default:
		return nil
	}
}

func hiddenFrom(fields any) map[string]string {
	switch v := fields.(type) {
	case map[string]string:
		return v
	case map[string]any:
		out := make(map[string]string, len(v))
		for name, value := range v {
			out[name] = keyString(value)
		}
		return out
	default:
		return nil
	}
}
