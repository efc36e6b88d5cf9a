package main

import (
	"context"
	"io"

	"github.com/fwojciec/tabsplit"
	"github.com/fwojciec/tabsplit/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *tabsplit.Config
	Builder *build.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `short:"c" env:"TABSPLIT_CONFIG" help:"YAML configuration file"`
	Catalog   string `env:"TABSPLIT_CATALOG" help:"Catalog page holding the tab panels (default: showcase.html)"`
	Reference string `env:"TABSPLIT_REFERENCE" help:"Reference page providing header, footer and styles (default: index.html)"`
	Out       string `short:"o" env:"TABSPLIT_OUT" help:"Output directory (default: demo)"`
	Verbose   bool   `short:"v" help:"Log every step to stderr"`

	Build    BuildCmd    `cmd:"" default:"withargs" help:"Generate one demo page per section"`
	Sections SectionsCmd `cmd:"" help:"List the configured sections"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	DryRun bool `short:"n" name:"dry-run" help:"Show which pages would be created without writing them"`
	Strict bool `help:"Fail when a section cannot be found in the catalog"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}
