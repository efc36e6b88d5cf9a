// Package tabsplit splits the tab panels of a static HTML catalog page into
// standalone demo pages that share the header, footer and inline styles of
// a reference page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, yaml/).
package tabsplit
