package elements

import (
	"strconv"
	"strings"
)

// CheckedValue is the value a checkbox submits and the Current value that
// marks it checked.
const CheckedValue = "1"

// Checkbox renders a single checkbox. Disabled wins over Readonly.
func (e *Elements) Checkbox(cfg CheckboxConfig) (string, error) {
	cfg = mergeCheckbox(cfg, DefaultCheckboxConfig)

	id, err := e.controlID("checkbox", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<input type="checkbox"`)
	switch {
	case cfg.Disabled:
		writeAttr(&builder, "disabled", "disabled")
	case cfg.Readonly:
		writeAttr(&builder, "readonly", "readonly")
	}
	writeAttr(&builder, "name", cfg.Name)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "class", joinClasses(classTokens(cfg.Class), cfg.Name))
	writeAttr(&builder, "value", CheckedValue)
	writeDataAttrs(&builder, cfg.Data)
	if keyString(cfg.Current) == CheckedValue {
		writeAttr(&builder, "checked", "checked")
	}
	builder.WriteString(` />`)
	return builder.String(), nil
}

// CheckboxList renders one checkbox per option, submitted as name[]. Keys in
// cfg.Current are checked.
func (e *Elements) CheckboxList(cfg CheckboxListConfig) (string, error) {
	cfg = mergeCheckboxList(cfg, DefaultCheckboxListConfig)

	id, err := e.controlID("checkbox_list", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	items := make([]choiceItem, len(cfg.Options))
	for i, choice := range cfg.Options {
		items[i] = choiceItem{
			choice:  choice,
			checked: cfg.Current.Has(choice.Key),
		}
	}

	return e.writeChoiceGroup(choiceGroup{
		inputType: "checkbox",
		name:      cfg.Name + "[]",
		baseID:    id,
		class:     joinClasses(classTokens(cfg.Class), cfg.Name),
		labelPos:  cfg.LabelPos,
		disabled:  cfg.Disabled,
		items:     items,
	}), nil
}

// Radio renders a radio group; every input shares cfg.Name so browsers keep
// the choice exclusive. The option whose key equals cfg.Current is checked.
func (e *Elements) Radio(cfg RadioConfig) (string, error) {
	cfg = mergeRadio(cfg, DefaultRadioConfig)

	id, err := e.controlID("radio", cfg.ID, cfg.Name)
	if err != nil {
		return "", err
	}

	current := keyString(cfg.Current)
	hasCurrent := cfg.Current != nil
	items := make([]choiceItem, len(cfg.Options))
	for i, choice := range cfg.Options {
		items[i] = choiceItem{
			choice:  choice,
			checked: hasCurrent && choice.Key == current,
		}
	}

	return e.writeChoiceGroup(choiceGroup{
		inputType: "radio",
		name:      cfg.Name,
		baseID:    id,
		class:     joinClasses(classTokens(cfg.Class), cfg.Name),
		labelPos:  cfg.LabelPos,
		disabled:  cfg.Disabled,
		items:     items,
	}), nil
}

type choiceItem struct {
	choice  Choice
	checked bool
}

type choiceGroup struct {
	inputType string
	name      string
	baseID    string
	class     string
	labelPos  string
	disabled  bool
	items     []choiceItem
}

// writeChoiceGroup emits the inputs separated by <br />, never after the last.
func (e *Elements) writeChoiceGroup(group choiceGroup) string {
	var builder strings.Builder
	seen := make(map[string]struct{}, len(group.items))
	for i, item := range group.items {
		if i > 0 {
			builder.WriteString(`<br />`)
		}
		itemID := choiceItemID(group.baseID, item.choice.Key, i, seen)

		if group.labelPos != LabelAfter {
			writeInlineLabel(&builder, itemID, item.choice.Label)
			builder.WriteString(`&nbsp;`)
		}

		builder.WriteString(`<input`)
		writeAttr(&builder, "type", group.inputType)
		writeAttr(&builder, "name", group.name)
		writeAttr(&builder, "id", itemID)
		writeAttr(&builder, "class", group.class)
		writeAttr(&builder, "value", item.choice.Key)
		if item.checked {
			writeAttr(&builder, "checked", "checked")
		}
		if group.disabled {
			writeAttr(&builder, "disabled", "disabled")
		}
		builder.WriteString(` />`)

		if group.labelPos == LabelAfter {
			builder.WriteString(`&nbsp;`)
			writeInlineLabel(&builder, itemID, item.choice.Label)
		}
	}
	return builder.String()
}

func writeInlineLabel(builder *strings.Builder, forID, label string) {
	builder.WriteString(`<label`)
	writeAttr(builder, "for", forID)
	builder.WriteByte('>')
	builder.WriteString(EscapeText(label))
	builder.WriteString(`</label>`)
}

// choiceItemID derives a per-item id unique within the group. Keys that
// sanitise to nothing or collide with an earlier item get the item index
// appended.
func choiceItemID(baseID, key string, index int, seen map[string]struct{}) string {
	suffix := SanitizeIdentifier(key)
	if suffix == "" {
		suffix = strconv.Itoa(index)
	}
	id := baseID + "-" + suffix
	for {
		if _, dup := seen[id]; !dup {
			break
		}
		id += "-" + strconv.Itoa(index)
	}
	seen[id] = struct{}{}
	return id
}
