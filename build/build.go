// Package build provides demo page generation orchestration.
// It coordinates loading the source documents, extracting fragments and
// sections, rendering pages and writing them out.
package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tabsplit"
)

// Builder generates one page per configured section.
type Builder struct {
	Loader    tabsplit.DocumentLoader
	Fragments tabsplit.FragmentExtractor
	Sections  tabsplit.SectionExtractor
	Links     tabsplit.LinkRewriter
	Writer    tabsplit.PageWriter

	// DryRun renders pages without preparing the output directory or
	// writing files. Writer may be nil.
	DryRun bool
}

// Result holds the outcome of a build.
type Result struct {
	Written []string
	Missing []string
}

// ProgressEvent reports the outcome for one section.
type ProgressEvent struct {
	Type      ProgressType
	Section   tabsplit.Section
	Path      string
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressCreated ProgressType = iota
	ProgressMissing
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build generates the pages described by cfg.
//
// Failing to load either source document aborts the build before the output
// directory is touched. A section whose panel cannot be found is reported
// as ProgressMissing and skipped; the remaining sections are still built.
func (b *Builder) Build(ctx context.Context, cfg *tabsplit.Config, progress ProgressFunc) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalog, err := b.Loader.LoadDocument(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	reference, err := b.Loader.LoadDocument(ctx, cfg.ReferencePath)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}

	fragments, err := b.Fragments.ExtractFragments(reference)
	if err != nil {
		return nil, fmt.Errorf("extract fragments: %w", err)
	}
	header, err := b.Links.RewriteFragment(fragments.Header, "")
	if err != nil {
		return nil, fmt.Errorf("rewrite header: %w", err)
	}
	footer, err := b.Links.RewriteFragment(fragments.Footer, cfg.CatalogLink())
	if err != nil {
		return nil, fmt.Errorf("rewrite footer: %w", err)
	}
	styles := b.Links.RewriteCSS(fragments.Styles)

	if !b.DryRun {
		if err := b.Writer.Prepare(ctx); err != nil {
			return nil, fmt.Errorf("prepare output: %w", err)
		}
	}

	result := &Result{}
	total := len(cfg.Sections)
	for i, section := range cfg.Sections {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		event := ProgressEvent{
			Section:   section,
			Completed: i + 1,
			Total:     total,
		}

		content, err := b.Sections.ExtractSection(catalog, section.ID)
		if err != nil {
			if tabsplit.ErrorCode(err) != tabsplit.ENOTFOUND {
				return result, fmt.Errorf("extract section %s: %w", section.ID, err)
			}
			result.Missing = append(result.Missing, section.ID)
			event.Type = ProgressMissing
			event.Error = err
			notify(progress, event)
			continue
		}

		html := tabsplit.RenderPage(cfg, &tabsplit.Page{
			Section: section,
			Header:  header,
			Footer:  footer,
			Styles:  styles,
			Content: content,
		})

		path := filepath.Join(cfg.OutputDir, section.FileName())
		if !b.DryRun {
			path, err = b.Writer.WritePage(ctx, section.FileName(), html)
			if err != nil {
				return result, fmt.Errorf("write %s: %w", section.FileName(), err)
			}
		}

		result.Written = append(result.Written, path)
		event.Type = ProgressCreated
		event.Path = path
		notify(progress, event)
	}

	return result, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
