package tabsplit

import "path/filepath"

// Boundary describes where a fragment lives in a document. The fragment
// starts at the first element matching Start. When End is set the fragment
// extends over Start's following siblings up to and including the first one
// that matches End.
type Boundary struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// FragmentSelectors locates the shared fragments in the reference document.
type FragmentSelectors struct {
	Header Boundary `yaml:"header"`
	Footer Boundary `yaml:"footer"`
	Styles Boundary `yaml:"styles"`
	Head   Boundary `yaml:"head"`
}

// Config holds everything a build needs. DefaultConfig reproduces the
// site's build layout; tests and the CLI override individual fields.
type Config struct {
	CatalogPath   string
	ReferencePath string
	OutputDir     string

	Sections []Section

	SiteName string
	Author   string
	Theme    string

	// PathPrefix is prepended to site-relative links so they resolve from
	// OutputDir.
	PathPrefix string
	AssetDir   string
	NavPages   []string

	PanelClass    string
	PanelIDPrefix string
	Selectors     FragmentSelectors

	FontsURL    string
	Stylesheets []string
	Scripts     []string
}

// DefaultConfig returns the configuration of the framework showcase site.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath:   "showcase.html",
		ReferencePath: "index.html",
		OutputDir:     "demo",
		Sections:      DefaultSections(),
		SiteName:      "Framework Showcase",
		Author:        "Marceli Cieplik",
		Theme:         "dark",
		PathPrefix:    "../",
		AssetDir:      "assets/",
		NavPages: []string{
			"index.html",
			"about.html",
			"solutions.html",
			"contact.html",
			"blog.html",
			"showcase.html",
		},
		PanelClass:    "tab__panel",
		PanelIDPrefix: "tab-",
		Selectors: FragmentSelectors{
			Header: Boundary{Start: "a.skip-link", End: "header"},
			Footer: Boundary{Start: "footer.site-footer"},
			Styles: Boundary{Start: "style"},
			Head:   Boundary{Start: "head"},
		},
		FontsURL: "https://fonts.googleapis.com/css2?family=Space+Grotesk:wght@400;600&family=Inter:wght@400;600&display=swap",
		Stylesheets: []string{
			"assets/css/framework-unified.css",
			"assets/css/typography-system.css",
		},
		Scripts: []string{
			"assets/js/utils.js",
			"assets/js/main.js",
			"assets/js/components.js",
		},
	}
}

// Validate returns an error if the configuration cannot drive a build.
func (c *Config) Validate() error {
	if c.CatalogPath == "" {
		return Errorf(EINVALID, "catalog path required")
	}
	if c.ReferencePath == "" {
		return Errorf(EINVALID, "reference path required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if len(c.Sections) == 0 {
		return Errorf(EINVALID, "at least one section required")
	}

	seen := make(map[string]bool, len(c.Sections))
	for i := range c.Sections {
		s := &c.Sections[i]
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.ID] {
			return Errorf(EINVALID, "duplicate section ID %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// CatalogLink returns the href under which pages link to the catalog.
func (c *Config) CatalogLink() string {
	return filepath.Base(c.CatalogPath)
}

// Section returns the configured section with the given ID.
// Returns ENOTFOUND if no section has that ID.
func (c *Config) Section(id string) (*Section, error) {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], nil
		}
	}
	return nil, Errorf(ENOTFOUND, "section %q not configured", id)
}
