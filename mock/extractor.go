package mock

import "github.com/fwojciec/tabsplit"

// Compile-time interface verification.
var (
	_ tabsplit.FragmentExtractor = (*FragmentExtractor)(nil)
	_ tabsplit.SectionExtractor  = (*SectionExtractor)(nil)
	_ tabsplit.LinkRewriter      = (*LinkRewriter)(nil)
)

// FragmentExtractor is a mock implementation of tabsplit.FragmentExtractor.
type FragmentExtractor struct {
	ExtractFragmentsFn func(html string) (*tabsplit.Fragments, error)
}

func (e *FragmentExtractor) ExtractFragments(html string) (*tabsplit.Fragments, error) {
	return e.ExtractFragmentsFn(html)
}

// SectionExtractor is a mock implementation of tabsplit.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionFn func(html string, id string) (string, error)
}

func (e *SectionExtractor) ExtractSection(html string, id string) (string, error) {
	return e.ExtractSectionFn(html, id)
}

// LinkRewriter is a mock implementation of tabsplit.LinkRewriter.
type LinkRewriter struct {
	RewriteFragmentFn func(html string, selfLink string) (string, error)
	RewriteCSSFn      func(css string) string
}

func (r *LinkRewriter) RewriteFragment(html string, selfLink string) (string, error) {
	return r.RewriteFragmentFn(html, selfLink)
}

func (r *LinkRewriter) RewriteCSS(css string) string {
	return r.RewriteCSSFn(css)
}
