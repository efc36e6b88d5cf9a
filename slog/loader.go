package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tabsplit"
)

// Ensure LoggingLoader implements tabsplit.DocumentLoader.
var _ tabsplit.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with debug logging.
type LoggingLoader struct {
	next   tabsplit.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next tabsplit.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// LoadDocument delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) LoadDocument(ctx context.Context, path string) (doc string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load document",
			"path", path,
			"bytes", len(doc),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadDocument(ctx, path)
}
