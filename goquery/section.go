package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabsplit"
)

// Ensure SectionExtractor implements tabsplit.SectionExtractor at compile time.
var _ tabsplit.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor finds tab panels in the catalog page by id.
type SectionExtractor struct {
	panelClass string
	idPrefix   string
	links      *LinkRewriter
}

// NewSectionExtractor creates a new SectionExtractor. Panels are looked up
// by the id idPrefix+<section ID>, preferring elements with panelClass.
// Asset references inside extracted panels are rewritten with links.
func NewSectionExtractor(panelClass, idPrefix string, links *LinkRewriter) *SectionExtractor {
	return &SectionExtractor{
		panelClass: panelClass,
		idPrefix:   idPrefix,
		links:      links,
	}
}

// ExtractSection returns the inner HTML of the section's panel.
// The panel element itself is dropped and hidden attributes inside it are
// removed so the content is visible on its own page.
func (e *SectionExtractor) ExtractSection(src string, id string) (string, error) {
	if id == "" {
		return "", tabsplit.Errorf(tabsplit.EINVALID, "section ID required")
	}

	doc, err := parseDocument(src)
	if err != nil {
		return "", err
	}

	panel := e.findPanel(doc, id)
	if panel == nil {
		return "", tabsplit.Errorf(tabsplit.ENOTFOUND, "could not find content for %s", id)
	}

	panel.Find("[hidden]").RemoveAttr("hidden")
	if e.links != nil {
		e.links.rewrite(panel, "", false)
	}

	return strings.TrimSpace(innerHTML(panel.Get(0))), nil
}

// findPanel tries the panel class first and falls back to any element
// carrying the panel id.
func (e *SectionExtractor) findPanel(doc *goquery.Document, id string) *goquery.Selection {
	idSelector := fmt.Sprintf(`[id="%s%s"]`, e.idPrefix, id)

	if e.panelClass != "" {
		if sel := doc.Find("div." + e.panelClass + idSelector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if sel := doc.Find(idSelector).First(); sel.Length() > 0 {
		return sel
	}
	return nil
}
