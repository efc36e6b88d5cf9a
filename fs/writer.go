package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/tabsplit"
)

// Ensure Writer implements tabsplit.PageWriter at compile time.
var _ tabsplit.PageWriter = (*Writer)(nil)

// Writer writes pages as HTML files into a directory.
// Each page is written to a temporary file and renamed into place, so an
// interrupted run never leaves a truncated page behind.
type Writer struct {
	dir string
}

// NewWriter creates a new Writer that writes to dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Prepare creates the output directory if it does not exist.
func (w *Writer) Prepare(ctx context.Context) error {
	return os.MkdirAll(w.dir, 0755)
}

// WritePage writes content to dir/name and returns the written path.
func (w *Writer) WritePage(ctx context.Context, name string, content string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", tabsplit.Errorf(tabsplit.EINVALID, "invalid page name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, name)

	tmp, err := os.CreateTemp(w.dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	return path, nil
}
