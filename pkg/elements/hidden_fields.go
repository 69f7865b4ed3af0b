package elements

import (
	"sort"
	"strings"
)

// HiddenField is a name/value pair submitted alongside the visible controls.
type HiddenField struct {
	Name  string
	Value string
}

// HiddenValue returns a HiddenField, formatting value like any other control value.
func HiddenValue(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: keyString(value)}
}

// Nonce carries a request verification token, e.g. "kbs_ticket_nonce".
func Nonce(name, token string) HiddenField {
	return HiddenValue(name, token)
}

// TicketField carries the ticket a form acts on.
func TicketField(name string, ticketID any) HiddenField {
	return HiddenValue(pick(name, "ticket_id"), ticketID)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored and later fields win.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			out[name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields orders fields by name, dropping empty names.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	names := make([]string, 0, len(fields))
	clean := make(map[string]string, len(fields))
	for name, value := range fields {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		if _, seen := clean[key]; !seen {
			names = append(names, key)
		}
		clean[key] = value
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: name, Value: clean[name]})
	}
	return out
}

// HiddenFields renders one hidden input per field, sorted by name.
func (e *Elements) HiddenFields(fields map[string]string, extra ...HiddenField) (string, error) {
	var builder strings.Builder
	for _, field := range SortedHiddenFields(MergeHiddenFields(fields, extra...)) {
		out, err := e.Hidden(HiddenConfig{Name: field.Name, Value: field.Value})
		if err != nil {
			return "", err
		}
		builder.WriteString(out)
	}
	return builder.String(), nil
}
