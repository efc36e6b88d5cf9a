package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tabsplit"
	"github.com/fwojciec/tabsplit/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	b := *deps.Builder
	b.DryRun = c.DryRun

	progress := func(e build.ProgressEvent) {
		switch e.Type {
		case build.ProgressCreated:
			if c.DryRun {
				fmt.Fprintf(deps.Stdout, "Would create %s\n", e.Path)
				return
			}
			fmt.Fprintf(deps.Stdout, "Created %s\n", e.Path)
		case build.ProgressMissing:
			fmt.Fprintf(deps.Stderr, "Warning: Could not find content for %s\n", e.Section.ID)
		}
	}

	result, err := b.Build(deps.Ctx, deps.Config, progress)
	if err != nil {
		return err
	}

	total := len(deps.Config.Sections)
	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "\nDone! %d of %d demo pages would be created.\n", len(result.Written), total)
	} else {
		fmt.Fprintf(deps.Stdout, "\nDone! Created %d of %d demo pages.\n", len(result.Written), total)
	}

	if c.Strict && len(result.Missing) > 0 {
		return tabsplit.Errorf(tabsplit.ENOTFOUND, "missing sections: %s", strings.Join(result.Missing, ", "))
	}
	return nil
}
