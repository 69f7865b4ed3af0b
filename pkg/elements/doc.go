// Package elements renders the admin form controls used across the helpdesk
// screens: dropdowns, checkboxes, radio groups, text/number/hidden inputs,
// textareas and the ajax user search scaffold.
//
// Every control is described by a configuration struct. Caller values are
// merged over the named Default* configuration for that control, identifiers
// are derived and sanitised, and every value is escaped at the point it is
// written into markup. Selection matching always runs on the raw values.
//
// An *Elements value carries only collaborators and settings, so a single
// instance can render concurrently from any number of goroutines.
package elements
