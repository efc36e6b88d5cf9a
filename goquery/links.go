package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabsplit"
	"golang.org/x/net/html"
)

// Ensure LinkRewriter implements tabsplit.LinkRewriter at compile time.
var _ tabsplit.LinkRewriter = (*LinkRewriter)(nil)

// LinkRewriter rewrites site-relative links so markup copied from a page at
// the site root keeps working from a subdirectory.
type LinkRewriter struct {
	prefix   string
	assetDir string
	navPages map[string]bool
	cssURL   *regexp.Regexp
	cssRepl  string
}

// NewLinkRewriter creates a LinkRewriter that prepends prefix to links into
// assetDir and to links pointing at one of navPages.
func NewLinkRewriter(prefix, assetDir string, navPages []string) *LinkRewriter {
	pages := make(map[string]bool, len(navPages))
	for _, p := range navPages {
		pages[p] = true
	}
	r := &LinkRewriter{
		prefix:   prefix,
		assetDir: assetDir,
		navPages: pages,
	}
	if assetDir != "" {
		r.cssURL = regexp.MustCompile(`url\((\s*['"]?)` + regexp.QuoteMeta(assetDir))
		r.cssRepl = "url(${1}" + strings.ReplaceAll(prefix+assetDir, "$", "$$")
	}
	return r
}

// RewriteFragment rewrites asset and navigation links in a body fragment.
// Links whose path equals selfLink become same-page anchors.
func (r *LinkRewriter) RewriteFragment(src string, selfLink string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return src, nil
	}

	doc, err := parseFragment(src)
	if err != nil {
		return "", err
	}

	r.rewrite(doc.Selection, selfLink, true)

	return innerHTML(doc.Get(0)), nil
}

// RewriteCSS rewrites url() references into the asset directory.
// Quoting is preserved; references already pointing elsewhere are left alone.
func (r *LinkRewriter) RewriteCSS(css string) string {
	if r.cssURL == nil {
		return css
	}
	return r.cssURL.ReplaceAllString(css, r.cssRepl)
}

// rewrite updates the descendants of sel in place.
func (r *LinkRewriter) rewrite(sel *goquery.Selection, selfLink string, nav bool) {
	sel.Find("[src]").Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr("src"); ok {
			s.SetAttr("src", r.rewriteAsset(v))
		}
	})

	sel.Find("[href]").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("href")
		if nav {
			s.SetAttr("href", r.rewriteHref(v, selfLink))
			return
		}
		s.SetAttr("href", r.rewriteAsset(v))
	})

	sel.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("style")
		s.SetAttr("style", r.RewriteCSS(v))
	})

	sel.Find("style").Each(func(_ int, s *goquery.Selection) {
		for c := s.Get(0).FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				c.Data = r.RewriteCSS(c.Data)
			}
		}
	})
}

func (r *LinkRewriter) rewriteAsset(v string) string {
	if r.assetDir != "" && strings.HasPrefix(v, r.assetDir) {
		return r.prefix + v
	}
	return v
}

func (r *LinkRewriter) rewriteHref(v, selfLink string) string {
	path, suffix := splitRef(v)
	if selfLink != "" && path == selfLink {
		if strings.HasPrefix(suffix, "#") {
			return suffix
		}
		return "#"
	}
	if r.navPages[path] {
		return r.prefix + v
	}
	return r.rewriteAsset(v)
}

// splitRef splits a link into its path and the query or fragment suffix.
func splitRef(v string) (path, suffix string) {
	if i := strings.IndexAny(v, "?#"); i >= 0 {
		return v[:i], v[i:]
	}
	return v, ""
}
