// Package usersearch serves the lookups behind the ajax user search control
// rendered by elements.UserSearch.
//
// The handler answers GET and HEAD requests with a JSON document of the form
// {"data": [...]} filtered by the search parameter. Users come from a
// Directory; StaticDirectory is an in-memory implementation loaded from YAML.
package usersearch
