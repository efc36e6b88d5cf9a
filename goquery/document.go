// Package goquery implements structural extraction and link rewriting over
// parsed HTML trees.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabsplit"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseDocument parses a complete HTML document.
func parseDocument(src string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, tabsplit.Errorf(tabsplit.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// parseFragment parses a piece of body markup without moving elements into
// an implied head. The returned document's root is a detached body element
// holding the fragment's nodes.
func parseFragment(src string) (*goquery.Document, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), parent)
	if err != nil {
		return nil, tabsplit.Errorf(tabsplit.EINVALID, "failed to parse HTML fragment: %v", err)
	}

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// renderNodes serializes nodes in order, text nodes included.
func renderNodes(nodes []*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		renderNode(&b, n)
	}
	return b.String(), nil
}
