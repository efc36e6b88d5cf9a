package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tabsplit"
)

// Ensure LoggingPageWriter implements tabsplit.PageWriter.
var _ tabsplit.PageWriter = (*LoggingPageWriter)(nil)

// LoggingPageWriter wraps a PageWriter with debug logging.
type LoggingPageWriter struct {
	next   tabsplit.PageWriter
	logger *slog.Logger
}

// NewLoggingPageWriter creates a new LoggingPageWriter.
func NewLoggingPageWriter(next tabsplit.PageWriter, logger *slog.Logger) *LoggingPageWriter {
	return &LoggingPageWriter{next: next, logger: logger}
}

// Prepare delegates to the wrapped writer and logs the operation.
func (w *LoggingPageWriter) Prepare(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("prepare output",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Prepare(ctx)
}

// WritePage delegates to the wrapped writer and logs the operation.
func (w *LoggingPageWriter) WritePage(ctx context.Context, name string, content string) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write page",
			"name", name,
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePage(ctx, name, content)
}
