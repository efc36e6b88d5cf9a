// Package yaml loads tabsplit configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/tabsplit"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the on-disk layout. Unset fields keep their defaults.
type fileConfig struct {
	Catalog       string                      `yaml:"catalog"`
	Reference     string                      `yaml:"reference"`
	Output        string                      `yaml:"output"`
	SiteName      string                      `yaml:"site_name"`
	Author        string                      `yaml:"author"`
	Theme         string                      `yaml:"theme"`
	PathPrefix    *string                     `yaml:"path_prefix"`
	AssetDir      *string                     `yaml:"asset_dir"`
	NavPages      []string                    `yaml:"nav_pages"`
	PanelClass    *string                     `yaml:"panel_class"`
	PanelIDPrefix *string                     `yaml:"panel_id_prefix"`
	Selectors     *tabsplit.FragmentSelectors `yaml:"selectors"`
	FontsURL      *string                     `yaml:"fonts_url"`
	Stylesheets   []string                    `yaml:"stylesheets"`
	Scripts       []string                    `yaml:"scripts"`
	Sections      []tabsplit.Section          `yaml:"sections"`
}

// LoadConfig reads the YAML file at path and applies it on top of
// tabsplit.DefaultConfig. Returns ENOTFOUND if the file does not exist.
func LoadConfig(path string) (*tabsplit.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tabsplit.Errorf(tabsplit.ENOTFOUND, "config file %s does not exist", path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML data on top of tabsplit.DefaultConfig.
// Unknown keys are rejected so typos surface instead of being ignored.
func ParseConfig(data []byte) (*tabsplit.Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, tabsplit.Errorf(tabsplit.EINVALID, "invalid config: %v", err)
	}

	cfg := tabsplit.DefaultConfig()
	setString(&cfg.CatalogPath, fc.Catalog)
	setString(&cfg.ReferencePath, fc.Reference)
	setString(&cfg.OutputDir, fc.Output)
	setString(&cfg.SiteName, fc.SiteName)
	setString(&cfg.Author, fc.Author)
	setString(&cfg.Theme, fc.Theme)
	setOptional(&cfg.PathPrefix, fc.PathPrefix)
	setOptional(&cfg.AssetDir, fc.AssetDir)
	setOptional(&cfg.PanelClass, fc.PanelClass)
	setOptional(&cfg.PanelIDPrefix, fc.PanelIDPrefix)
	setOptional(&cfg.FontsURL, fc.FontsURL)
	if fc.NavPages != nil {
		cfg.NavPages = fc.NavPages
	}
	if fc.Stylesheets != nil {
		cfg.Stylesheets = fc.Stylesheets
	}
	if fc.Scripts != nil {
		cfg.Scripts = fc.Scripts
	}
	if fc.Selectors != nil {
		mergeSelectors(&cfg.Selectors, fc.Selectors)
	}
	if fc.Sections != nil {
		cfg.Sections = normalizeSections(fc.Sections)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizeSections fills in titles the file leaves out. A missing short
// title is derived from the ID ("design-tokens" becomes "Design Tokens")
// and a missing title falls back to the short title.
func normalizeSections(in []tabsplit.Section) []tabsplit.Section {
	caser := cases.Title(language.English)
	out := make([]tabsplit.Section, len(in))
	for i, s := range in {
		if s.ShortTitle == "" && s.ID != "" {
			s.ShortTitle = caser.String(humanize(s.ID))
		}
		if s.Title == "" {
			s.Title = s.ShortTitle
		}
		out[i] = s
	}
	return out
}

func humanize(id string) string {
	b := []byte(id)
	for i, c := range b {
		if c == '-' || c == '_' {
			b[i] = ' '
		}
	}
	return string(b)
}

func mergeSelectors(dst, src *tabsplit.FragmentSelectors) {
	mergeBoundary(&dst.Header, src.Header)
	mergeBoundary(&dst.Footer, src.Footer)
	mergeBoundary(&dst.Styles, src.Styles)
	mergeBoundary(&dst.Head, src.Head)
}

func mergeBoundary(dst *tabsplit.Boundary, src tabsplit.Boundary) {
	if src.Start == "" {
		return
	}
	*dst = src
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setOptional(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
