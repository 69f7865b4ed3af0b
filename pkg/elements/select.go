package elements

import "strings"

// Select renders a <select> control.
//
// The "all" sentinel is written when cfg.ShowAll is enabled and is selected
// when "0" is selected. The "none" sentinel (value -1) is only written when
// there are real options. Real options follow in their configured order.
func (e *Elements) Select(cfg SelectConfig) (string, error) {
	def := DefaultSelectConfig
	def.ShowAll = e.translateFlag(def.ShowAll)
	def.ShowNone = e.translateFlag(def.ShowNone)
	cfg = mergeSelect(cfg, def)

	id, err := e.controlID("select", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	base := []string{ClassSelect}
	if cfg.Chosen {
		base = append(base, ClassSelectChosen)
	}

	var builder strings.Builder
	builder.WriteString(`<select`)
	writeAttr(&builder, "name", cfg.Name)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "class", joinClasses(base, cfg.Class))
	writeFlag(&builder, cfg.Multiple, "multiple")
	writeAttr(&builder, "data-placeholder", cfg.Placeholder)
	writeDataAttrs(&builder, cfg.Data)
	builder.WriteString(`>`)
	builder.WriteString(e.lineBreak)

	if cfg.ShowAll.Enabled() {
		e.writeOption(&builder, OptionAllValue, cfg.ShowAll.Label(), optionSelected(cfg, OptionAllSentinel))
	}

	if len(cfg.Options) > 0 {
		if cfg.ShowNone.Enabled() {
			e.writeOption(&builder, OptionNoneValue, cfg.ShowNone.Label(), optionSelected(cfg, OptionNoneValue))
		}
		for _, choice := range cfg.Options {
			e.writeOption(&builder, choice.Key, choice.Label, optionSelected(cfg, choice.Key))
		}
	}

	builder.WriteString(`</select>`)
	builder.WriteString(e.lineBreak)
	return builder.String(), nil
}

// optionSelected applies set membership for multi-selects and compares the
// single configured value otherwise.
func optionSelected(cfg SelectConfig, key string) bool {
	if cfg.Multiple {
		return cfg.Selected.Has(key)
	}
	return cfg.Selected.First() == key
}

func (e *Elements) writeOption(builder *strings.Builder, value, label string, selected bool) {
	builder.WriteString(`<option`)
	writeAttr(builder, "value", value)
	if selected {
		writeAttr(builder, "selected", "selected")
	}
	builder.WriteByte('>')
	builder.WriteString(EscapeText(label))
	builder.WriteString(`</option>`)
	builder.WriteString(e.lineBreak)
}

// translateFlag translates the label of a default sentinel flag.
func (e *Elements) translateFlag(flag Flag) Flag {
	if !flag.Enabled() {
		return flag
	}
	return ShowAs(e.tr(flag.Label()))
}
