package tabsplit

import (
	"regexp"
	"strings"
)

// Section describes one tab panel of the catalog page that becomes its own
// demo page.
type Section struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	ShortTitle string `json:"shortTitle" yaml:"short_title"`
}

var sectionIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate returns an error if the section contains invalid fields.
// The ID doubles as the output file name, so it is restricted to a safe
// character set.
func (s *Section) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "section ID required")
	}
	if !sectionIDRe.MatchString(s.ID) {
		return Errorf(EINVALID, "section ID %q may only contain letters, digits, '-' and '_'", s.ID)
	}
	if s.ShortTitle == "" {
		return Errorf(EINVALID, "section %q short title required", s.ID)
	}
	return nil
}

// FileName returns the name of the page generated for the section.
func (s *Section) FileName() string {
	return s.ID + ".html"
}

// PageTitle returns the contents of the page's title element.
func (s *Section) PageTitle(siteName string) string {
	return s.ShortTitle + " Demo | " + siteName
}

// Description returns the page's meta description.
func (s *Section) Description() string {
	title := s.Title
	if title == "" {
		title = s.ShortTitle
	}
	return "Demo page showcasing " + strings.ToLower(title) + " from the responsive CSS framework."
}

// Keywords returns the page's meta keywords.
func (s *Section) Keywords() string {
	return "CSS framework, responsive design, " + s.ID + ", design system, UI components"
}

// DefaultSections returns the catalog's ten tab panels in page order.
func DefaultSections() []Section {
	return []Section{
		{ID: "overview", Title: "Framework Overview", ShortTitle: "Overview"},
		{ID: "components", Title: "UI Components", ShortTitle: "Components"},
		{ID: "cards", Title: "Card Components", ShortTitle: "Cards"},
		{ID: "tokens", Title: "Design Tokens", ShortTitle: "Design Tokens"},
		{ID: "layout", Title: "12-Column Grid System", ShortTitle: "Layout"},
		{ID: "accessibility", Title: "Accessibility & Touch Optimization", ShortTitle: "Accessibility"},
		{ID: "typography", Title: "Fluid Typography System", ShortTitle: "Typography"},
		{ID: "icons", Title: "Icon Library", ShortTitle: "Icons"},
		{ID: "utilities", Title: "Utility Classes", ShortTitle: "Utilities"},
		{ID: "photos", Title: "Photo Gallery & Usage Stats", ShortTitle: "Photos"},
	}
}
