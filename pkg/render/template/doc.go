// Package template defines the template engine seam used for page level
// markup (dashboard fragments, screen layouts). Controls themselves are built
// with strings.Builder in package elements and never go through a template.
package template
