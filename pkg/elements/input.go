package elements

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Text renders a text input wrapped with its optional label and description.
func (e *Elements) Text(cfg TextConfig) (string, error) {
	cfg = mergeText(cfg, DefaultTextConfig)

	id, err := e.controlID("text", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	return e.writeLabelledInput(labelledInput{
		inputType:       "text",
		name:            cfg.Name,
		id:              id,
		value:           cfg.Value,
		label:           cfg.Label,
		description:     cfg.Description,
		descriptionHTML: cfg.DescriptionHTML,
		placeholder:     cfg.Placeholder,
		class:           SanitizeClassList(cfg.Class),
		autocomplete:    cfg.Autocomplete,
		disabled:        cfg.Disabled,
		data:            cfg.Data,
	}), nil
}

// DateField renders a text input carrying the date picker class token. Date
// parsing belongs to the client-side picker.
func (e *Elements) DateField(cfg TextConfig) (string, error) {
	switch {
	case strings.TrimSpace(cfg.Class) == "":
		cfg.Class = ClassDatepicker
	case !hasClassToken(cfg.Class, ClassDatepicker):
		cfg.Class += " " + ClassDatepicker
	}
	return e.Text(cfg)
}

// Number renders a number input. A Max above the configured ceiling is clamped
// to it.
func (e *Elements) Number(cfg NumberConfig) (string, error) {
	cfg = mergeNumber(cfg, DefaultNumberConfig)

	id, err := e.controlID("number", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	var extra []attr
	if cfg.Min != nil {
		extra = append(extra, attr{name: "min", value: strconv.Itoa(*cfg.Min)})
	}
	if cfg.Max != nil {
		upper := *cfg.Max
		if e.numberCeiling > 0 && upper > e.numberCeiling {
			e.logger.Debug("number max clamped",
				zap.String("name", cfg.Name),
				zap.Int("max", upper),
				zap.Int("ceiling", e.numberCeiling),
			)
			upper = e.numberCeiling
		}
		extra = append(extra, attr{name: "max", value: strconv.Itoa(upper)})
	}

	return e.writeLabelledInput(labelledInput{
		inputType:       "number",
		name:            cfg.Name,
		id:              id,
		value:           cfg.Value,
		label:           cfg.Label,
		description:     cfg.Description,
		descriptionHTML: cfg.DescriptionHTML,
		placeholder:     cfg.Placeholder,
		class:           SanitizeClassList(cfg.Class),
		autocomplete:    cfg.Autocomplete,
		disabled:        cfg.Disabled,
		data:            cfg.Data,
		extra:           extra,
	}), nil
}

// Hidden renders a bare hidden input.
func (e *Elements) Hidden(cfg HiddenConfig) (string, error) {
	cfg = mergeHidden(cfg, DefaultHiddenConfig)

	id, err := e.controlID("hidden", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<input type="hidden"`)
	writeAttr(&builder, "name", cfg.Name)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "value", cfg.Value)
	builder.WriteString(` />`)
	return builder.String(), nil
}

// Textarea renders a textarea; the description follows the control.
func (e *Elements) Textarea(cfg TextareaConfig) (string, error) {
	cfg = mergeTextarea(cfg, DefaultTextareaConfig)

	id, err := e.controlID("textarea", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<span`)
	writeAttr(&builder, "id", wrapID(cfg.Name))
	builder.WriteByte('>')
	e.writeLabel(&builder, id, cfg.Label)

	builder.WriteString(`<textarea`)
	writeAttr(&builder, "name", cfg.Name)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "class", SanitizeClassList(cfg.Class))
	if cfg.Disabled {
		writeAttr(&builder, "disabled", "disabled")
	}
	if cfg.Placeholder != "" {
		writeAttr(&builder, "placeholder", cfg.Placeholder)
	}
	builder.WriteByte('>')
	builder.WriteString(EscapeText(cfg.Value))
	builder.WriteString(`</textarea>`)

	e.writeDescription(&builder, cfg.Description, cfg.DescriptionHTML)
	builder.WriteString(`</span>`)
	return builder.String(), nil
}

type attr struct {
	name  string
	value string
}

type labelledInput struct {
	inputType       string
	name            string
	id              string
	value           string
	label           string
	description     string
	descriptionHTML string
	placeholder     string
	class           string
	autocomplete    string
	disabled        bool
	data            Data
	extra           []attr
}

func (e *Elements) writeLabelledInput(in labelledInput) string {
	var builder strings.Builder
	builder.WriteString(`<span`)
	writeAttr(&builder, "id", wrapID(in.name))
	builder.WriteByte('>')

	e.writeLabel(&builder, in.id, in.label)
	e.writeDescription(&builder, in.description, in.descriptionHTML)

	builder.WriteString(`<input`)
	writeAttr(&builder, "type", in.inputType)
	writeAttr(&builder, "name", in.name)
	writeAttr(&builder, "id", in.id)
	if in.autocomplete != "" {
		writeAttr(&builder, "autocomplete", in.autocomplete)
	}
	writeAttr(&builder, "value", in.value)
	if in.placeholder != "" {
		writeAttr(&builder, "placeholder", in.placeholder)
	}
	writeAttr(&builder, "class", in.class)
	writeDataAttrs(&builder, in.data)
	for _, a := range in.extra {
		writeAttr(&builder, a.name, a.value)
	}
	if in.disabled {
		writeAttr(&builder, "disabled", "disabled")
	}
	builder.WriteString(` />`)

	builder.WriteString(`</span>`)
	return builder.String()
}
