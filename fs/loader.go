// Package fs provides file-based loading and storage for tabsplit.
package fs

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/tabsplit"
)

// Ensure Loader implements tabsplit.DocumentLoader at compile time.
var _ tabsplit.DocumentLoader = (*Loader)(nil)

// Loader reads source documents from the local filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDocument reads the file at path as UTF-8 text.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is not
// valid UTF-8.
func (l *Loader) LoadDocument(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", tabsplit.Errorf(tabsplit.ENOTFOUND, "document %s does not exist", path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", tabsplit.Errorf(tabsplit.EINVALID, "document %s is not valid UTF-8", path)
	}
	return string(data), nil
}
