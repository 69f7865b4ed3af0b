package elements

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicyOnce sync.Once
	sharedDescription     *bluemonday.Policy
)

// descriptionPolicy allows the inline markup admin help text tends to carry:
// links, emphasis and code.
func descriptionPolicy() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "br")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		sharedDescription = policy
	})
	return sharedDescription
}

func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(EscapeAttribute(value))
	builder.WriteByte('"')
}

func writeDataAttrs(builder *strings.Builder, data Data) {
	for _, attr := range data {
		key := SanitizeIdentifier(attr.Key)
		if key == "" {
			continue
		}
		writeAttr(builder, "data-"+key, attr.Value)
	}
}

func writeFlag(builder *strings.Builder, on bool, name string) {
	if on {
		writeAttr(builder, name, name)
	}
}

func (e *Elements) writeLabel(builder *strings.Builder, forID, label string) {
	if label == "" {
		return
	}
	builder.WriteString(`<label class="`)
	builder.WriteString(ClassLabel)
	builder.WriteByte('"')
	writeAttr(builder, "for", forID)
	builder.WriteByte('>')
	builder.WriteString(EscapeText(label))
	builder.WriteString(`</label>`)
}

func (e *Elements) writeDescription(builder *strings.Builder, text, markup string) {
	var body string
	switch {
	case strings.TrimSpace(markup) != "":
		body = strings.TrimSpace(e.policy.Sanitize(markup))
	case text != "":
		body = EscapeText(text)
	}
	if body == "" {
		return
	}
	builder.WriteString(`<span class="`)
	builder.WriteString(ClassDescription)
	builder.WriteString(`">`)
	builder.WriteString(body)
	builder.WriteString(`</span>`)
}

// wrapID is the id of the span wrapping labelled inputs.
func wrapID(name string) string {
	return "kbs-" + SanitizeIdentifier(name) + "-wrap"
}
