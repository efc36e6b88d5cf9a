package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tabsplit"
)

// Ensure the extractor decorators implement their interfaces.
var (
	_ tabsplit.FragmentExtractor = (*LoggingFragmentExtractor)(nil)
	_ tabsplit.SectionExtractor  = (*LoggingSectionExtractor)(nil)
)

// LoggingFragmentExtractor wraps a FragmentExtractor with debug logging.
// Fragment sizes are logged because a missing fragment is otherwise silent.
type LoggingFragmentExtractor struct {
	next   tabsplit.FragmentExtractor
	logger *slog.Logger
}

// NewLoggingFragmentExtractor creates a new LoggingFragmentExtractor.
func NewLoggingFragmentExtractor(next tabsplit.FragmentExtractor, logger *slog.Logger) *LoggingFragmentExtractor {
	return &LoggingFragmentExtractor{next: next, logger: logger}
}

// ExtractFragments delegates to the wrapped extractor and logs fragment sizes.
func (e *LoggingFragmentExtractor) ExtractFragments(html string) (f *tabsplit.Fragments, err error) {
	defer func(begin time.Time) {
		var header, footer, styles, head int
		if f != nil {
			header, footer, styles, head = len(f.Header), len(f.Footer), len(f.Styles), len(f.Head)
		}
		e.logger.Info("extract fragments",
			"header_bytes", header,
			"footer_bytes", footer,
			"styles_bytes", styles,
			"head_bytes", head,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractFragments(html)
}

// LoggingSectionExtractor wraps a SectionExtractor with debug logging.
type LoggingSectionExtractor struct {
	next   tabsplit.SectionExtractor
	logger *slog.Logger
}

// NewLoggingSectionExtractor creates a new LoggingSectionExtractor.
func NewLoggingSectionExtractor(next tabsplit.SectionExtractor, logger *slog.Logger) *LoggingSectionExtractor {
	return &LoggingSectionExtractor{next: next, logger: logger}
}

// ExtractSection delegates to the wrapped extractor and logs the operation.
func (e *LoggingSectionExtractor) ExtractSection(html string, id string) (content string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract section",
			"id", id,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractSection(html, id)
}
