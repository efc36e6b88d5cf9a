package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tabsplit"
	"github.com/fwojciec/tabsplit/build"
	"github.com/fwojciec/tabsplit/fs"
	"github.com/fwojciec/tabsplit/goquery"
	tsslog "github.com/fwojciec/tabsplit/slog"
	"github.com/fwojciec/tabsplit/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tabsplit"),
		kong.Description("Split the tab panels of a showcase page into standalone demo pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.resolveConfig()
	if err != nil {
		return err
	}
	deps.Config = cfg

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Builder = newBuilder(cfg, logger)

	return kongCtx.Run(deps)
}

// resolveConfig layers the optional config file and command-line overrides
// on top of the defaults.
func (c *CLI) resolveConfig() (*tabsplit.Config, error) {
	cfg := tabsplit.DefaultConfig()
	if c.Config != "" {
		loaded, err := yaml.LoadConfig(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Catalog != "" {
		cfg.CatalogPath = c.Catalog
	}
	if c.Reference != "" {
		cfg.ReferencePath = c.Reference
	}
	if c.Out != "" {
		cfg.OutputDir = c.Out
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBuilder wires the filesystem and goquery implementations, wrapped in
// logging decorators when logger is non-nil.
func newBuilder(cfg *tabsplit.Config, logger *slog.Logger) *build.Builder {
	links := goquery.NewLinkRewriter(cfg.PathPrefix, cfg.AssetDir, cfg.NavPages)

	var (
		loader    tabsplit.DocumentLoader    = fs.NewLoader()
		fragments tabsplit.FragmentExtractor = goquery.NewFragmentExtractor(cfg.Selectors)
		sections  tabsplit.SectionExtractor  = goquery.NewSectionExtractor(cfg.PanelClass, cfg.PanelIDPrefix, links)
		writer    tabsplit.PageWriter        = fs.NewWriter(cfg.OutputDir)
	)
	if logger != nil {
		loader = tsslog.NewLoggingLoader(loader, logger)
		fragments = tsslog.NewLoggingFragmentExtractor(fragments, logger)
		sections = tsslog.NewLoggingSectionExtractor(sections, logger)
		writer = tsslog.NewLoggingPageWriter(writer, logger)
	}

	return &build.Builder{
		Loader:    loader,
		Fragments: fragments,
		Sections:  sections,
		Links:     links,
		Writer:    writer,
	}
}
