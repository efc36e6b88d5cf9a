package tabsplit

import "context"

// Fragments holds the pieces of the reference page shared by every
// generated page. A fragment that could not be located is empty.
type Fragments struct {
	Header string
	Footer string
	Styles string
	Head   string
}

// Page is one generated demo page before rendering.
// Header, Footer and Content already have their links rewritten.
type Page struct {
	Section Section
	Header  string
	Footer  string
	Styles  string
	Content string
}

// DocumentLoader reads a source document as text.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, path string) (string, error)
}

// FragmentExtractor pulls the shared fragments out of the reference page.
type FragmentExtractor interface {
	ExtractFragments(html string) (*Fragments, error)
}

// SectionExtractor returns the inner content of a section's tab panel with
// asset paths rewritten for the output directory.
// Returns ENOTFOUND if the catalog has no panel for the section.
type SectionExtractor interface {
	ExtractSection(html string, id string) (string, error)
}

// LinkRewriter rewrites site-relative links in a shared fragment so they
// resolve from the output directory. Links equal to selfLink become "#".
// RewriteCSS rewrites url() references in style text the same way.
type LinkRewriter interface {
	RewriteFragment(html string, selfLink string) (string, error)
	RewriteCSS(css string) string
}

// PageWriter persists rendered pages.
// Prepare creates the output location if it does not exist.
// WritePage returns the path the page was written to.
type PageWriter interface {
	Prepare(ctx context.Context) error
	WritePage(ctx context.Context, name string, content string) (string, error)
}
