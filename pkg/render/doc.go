// Package render holds the translation plumbing shared by the control
// renderers and the dashboard fragment. Catalog is an in-memory Translator
// that can be loaded from YAML.
package render
