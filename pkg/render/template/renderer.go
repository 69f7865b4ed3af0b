package template

import (
	"io"
)

// TemplateRenderer is the subset of the github.com/goliatone/go-template
// engine the dashboard fragment and screen layouts render through.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
