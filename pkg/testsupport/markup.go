package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a flattened view of a parsed element.
type Element struct {
	Tag   string
	Attrs map[string]string
	Text  string
}

// Has reports whether the attribute is present.
func (e Element) Has(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}

// ParseFragment parses markup in a <body> (or the supplied context element)
// and returns every element in document order.
func ParseFragment(t *testing.T, markup string, context ...atom.Atom) []Element {
	t.Helper()

	parent := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	if len(context) > 0 {
		parent = &html.Node{Type: html.ElementNode, DataAtom: context[0], Data: context[0].String()}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}

	var out []Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			el := Element{Tag: n.Data, Attrs: make(map[string]string, len(n.Attr)), Text: textContent(n)}
			for _, a := range n.Attr {
				el.Attrs[a.Key] = a.Val
			}
			out = append(out, el)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}

// Filter returns the elements with the given tag.
func Filter(elements []Element, tag string) []Element {
	var out []Element
	for _, el := range elements {
		if el.Tag == tag {
			out = append(out, el)
		}
	}
	return out
}

// Find returns the first element with tag whose attribute name equals value.
func Find(elements []Element, tag, name, value string) (Element, bool) {
	for _, el := range elements {
		if el.Tag == tag && el.Attrs[name] == value {
			return el, true
		}
	}
	return Element{}, false
}

func textContent(n *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return builder.String()
}
