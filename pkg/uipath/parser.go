package uipath

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is a queryable element of a parsed HTML document.
type Node interface {
	// Find returns the descendants matching the CSS selector, in document order.
	Find(selector string) []Node
	// Text returns the combined text content of the node and its descendants.
	Text() string
}

// DocumentParser parses an HTML document into a queryable tree.
type DocumentParser interface {
	Parse(r io.Reader) (Node, error)
}

// GoqueryParser implements DocumentParser on top of golang.org/x/net/html and goquery selectors.
type GoqueryParser struct{}

func (GoqueryParser) Parse(r io.Reader) (Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("can't parse HTML document: %w", err)
	}

	return selection{goquery.NewDocumentFromNode(root).Selection}, nil
}

type selection struct {
	sel *goquery.Selection
}

func (s selection) Find(selector string) []Node {
	var nodes []Node
	s.sel.Find(selector).Each(func(_ int, match *goquery.Selection) {
		nodes = append(nodes, selection{match})
	})

	return nodes
}

func (s selection) Text() string {
	return s.sel.Text()
}
