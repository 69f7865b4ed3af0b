package elements

import (
	"html"
	"strings"
)

// EscapeAttribute escapes text for use inside a double-quoted attribute value.
func EscapeAttribute(value string) string {
	return html.EscapeString(value)
}

// EscapeText escapes text for use as an HTML text node.
func EscapeText(value string) string {
	return html.EscapeString(value)
}

// SanitizeIdentifier lower-cases value and drops every character outside
// [a-z0-9_-]. The result is stable under repeated application.
func SanitizeIdentifier(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// SanitizeHTMLClass cleans a single class token: percent-encoded octets are
// removed and only [A-Za-z0-9_-] survive.
func SanitizeHTMLClass(token string) string {
	var builder strings.Builder
	builder.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c == '%' && i+2 < len(token) && isHex(token[i+1]) && isHex(token[i+2]) {
			i += 2
			continue
		}
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			builder.WriteByte(c)
		}
	}
	return builder.String()
}

// SanitizeClassList splits value on whitespace, sanitises each token, drops the
// ones left empty and rejoins with single spaces.
func SanitizeClassList(value string) string {
	return strings.Join(classTokens(value), " ")
}

// ControlID returns the element id for a control: id when given, otherwise
// name, with hyphens folded to underscores before sanitising.
func ControlID(id, name string) string {
	source := strings.TrimSpace(id)
	if source == "" {
		source = name
	}
	return SanitizeIdentifier(strings.ReplaceAll(source, "-", "_"))
}

func classTokens(value string) []string {
	fields := strings.Fields(value)
	keep := make([]string, 0, len(fields))
	for _, field := range fields {
		if token := SanitizeHTMLClass(field); token != "" {
			keep = append(keep, token)
		}
	}
	return keep
}

// joinClasses builds a class attribute value from a base token list followed
// by a free-form class list, skipping duplicates.
func joinClasses(base []string, extra string) string {
	seen := make(map[string]struct{}, len(base))
	out := make([]string, 0, len(base)+2)
	add := func(token string) {
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	for _, token := range base {
		add(SanitizeHTMLClass(token))
	}
	for _, token := range classTokens(extra) {
		add(token)
	}
	return strings.Join(out, " ")
}

func hasClassToken(list, token string) bool {
	for _, field := range strings.Fields(list) {
		if field == token {
			return true
		}
	}
	return false
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
