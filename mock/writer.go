package mock

import (
	"context"

	"github.com/fwojciec/tabsplit"
)

var _ tabsplit.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of tabsplit.PageWriter.
type PageWriter struct {
	PrepareFn   func(ctx context.Context) error
	WritePageFn func(ctx context.Context, name string, content string) (string, error)
}

func (w *PageWriter) Prepare(ctx context.Context) error {
	return w.PrepareFn(ctx)
}

func (w *PageWriter) WritePage(ctx context.Context, name string, content string) (string, error) {
	return w.WritePageFn(ctx, name, content)
}
