package mock

import (
	"context"

	"github.com/fwojciec/tabsplit"
)

var _ tabsplit.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of tabsplit.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, path string) (string, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (string, error) {
	return l.LoadDocumentFn(ctx, path)
}
