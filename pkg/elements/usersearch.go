package elements

import "strings"

// UserSearch renders the scaffold the ajax user search script attaches to: a
// text input followed by a hidden results container with a cancel link.
func (e *Elements) UserSearch(cfg UserSearchConfig) (string, error) {
	def := DefaultUserSearchConfig
	def.Placeholder = e.tr(def.Placeholder)
	cfg = mergeUserSearch(cfg, def)

	input, err := e.Text(TextConfig{
		Name:         cfg.Name,
		ID:           cfg.ID,
		Value:        cfg.Value,
		Label:        cfg.Label,
		Description:  cfg.Description,
		Placeholder:  cfg.Placeholder,
		Class:        strings.TrimSpace(ClassUserSearch + " " + cfg.Class),
		Disabled:     cfg.Disabled,
		Autocomplete: cfg.Autocomplete,
		Data:         cfg.Data,
	})
	if err != nil {
		return "", err
	}

	cancel := EscapeAttribute(e.tr("Cancel"))

	var builder strings.Builder
	builder.WriteString(`<span class="`)
	builder.WriteString(ClassUserSearchWrap)
	builder.WriteString(`">`)
	builder.WriteString(input)
	builder.WriteString(`<span class="kbs_user_search_results hidden">`)
	builder.WriteString(`<a class="kbs-ajax-user-cancel" title="`)
	builder.WriteString(cancel)
	builder.WriteString(`" aria-label="`)
	builder.WriteString(cancel)
	builder.WriteString(`" href="#">x</a><span></span></span>`)
	builder.WriteString(`</span>`)
	return builder.String(), nil
}
