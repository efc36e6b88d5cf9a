package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tabsplit"
	"github.com/fwojciec/tabsplit/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Prepare(t *testing.T) {
	t.Parallel()

	t.Run("creates missing directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site", "demo")
		w := fs.NewWriter(dir)

		require.NoError(t, w.Prepare(context.Background()))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("keeps existing files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		keep := filepath.Join(dir, "keep.html")
		require.NoError(t, os.WriteFile(keep, []byte("keep"), 0644))

		require.NoError(t, fs.NewWriter(dir).Prepare(context.Background()))

		assert.FileExists(t, keep)
	})
}

func TestWriter_WritePage(t *testing.T) {
	t.Parallel()

	t.Run("writes content and returns path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		path, err := w.WritePage(context.Background(), "overview.html", "<p>Hello</p>")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "overview.html"), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<p>Hello</p>", string(data))
	})

	t.Run("overwrites existing page without leftovers", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		_, err := w.WritePage(context.Background(), "cards.html", "first version that is longer")
		require.NoError(t, err)
		_, err = w.WritePage(context.Background(), "cards.html", "second")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "cards.html"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects names with path separators", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WritePage(context.Background(), "../escape.html", "x")

		assert.Equal(t, tabsplit.EINVALID, tabsplit.ErrorCode(err))
	})

	t.Run("fails when directory was not prepared", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(filepath.Join(t.TempDir(), "missing"))

		_, err := w.WritePage(context.Background(), "icons.html", "x")

		assert.Error(t, err)
	})
}
