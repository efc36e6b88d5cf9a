package main

import "fmt"

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Config.Sections {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.ShortTitle, s.Title)
	}
	return nil
}
