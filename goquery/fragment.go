package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabsplit"
	"golang.org/x/net/html"
)

// Ensure FragmentExtractor implements tabsplit.FragmentExtractor at compile time.
var _ tabsplit.FragmentExtractor = (*FragmentExtractor)(nil)

// FragmentExtractor locates the shared header, footer, styles and head of a
// reference page by CSS selector.
type FragmentExtractor struct {
	selectors tabsplit.FragmentSelectors
}

// NewFragmentExtractor creates a new FragmentExtractor.
func NewFragmentExtractor(selectors tabsplit.FragmentSelectors) *FragmentExtractor {
	return &FragmentExtractor{selectors: selectors}
}

// ExtractFragments parses the reference page and returns its fragments.
// A fragment that cannot be located is returned empty.
func (e *FragmentExtractor) ExtractFragments(src string) (*tabsplit.Fragments, error) {
	doc, err := parseDocument(src)
	if err != nil {
		return nil, err
	}

	var f tabsplit.Fragments
	targets := []struct {
		boundary tabsplit.Boundary
		dst      *string
	}{
		{e.selectors.Header, &f.Header},
		{e.selectors.Footer, &f.Footer},
		{e.selectors.Styles, &f.Styles},
		{e.selectors.Head, &f.Head},
	}
	for _, t := range targets {
		s, err := renderNodes(Span(doc, t.boundary))
		if err != nil {
			return nil, err
		}
		*t.dst = s
	}
	return &f, nil
}

// ExtractFragment returns the serialized span of the first match of b in
// src, or an empty string when there is no match.
func ExtractFragment(src string, b tabsplit.Boundary) (string, error) {
	doc, err := parseDocument(src)
	if err != nil {
		return "", err
	}
	return renderNodes(Span(doc, b))
}

// Span returns the nodes covered by b: the first element matching b.Start,
// and when b.End is set every following sibling up to and including the
// first one that matches b.End or contains a match.
// Returns nil when Start does not match or End is never reached.
func Span(doc *goquery.Document, b tabsplit.Boundary) []*html.Node {
	if b.Start == "" {
		return nil
	}
	start := doc.Find(b.Start).First()
	if start.Length() == 0 {
		return nil
	}
	first := start.Get(0)
	if b.End == "" || start.Is(b.End) {
		return []*html.Node{first}
	}

	var last *html.Node
	start.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		if sib.Is(b.End) || sib.Find(b.End).Length() > 0 {
			last = sib.Get(0)
			return false
		}
		return true
	})
	if last == nil {
		return nil
	}

	nodes := []*html.Node{first}
	for n := first.NextSibling; n != nil; n = n.NextSibling {
		nodes = append(nodes, n)
		if n == last {
			break
		}
	}
	return nodes
}
