package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/tabsplit/mock"
	tsslog "github.com/fwojciec/tabsplit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLoader_LoadDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs path, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentLoader{
			LoadDocumentFn: func(_ context.Context, path string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		loader := tsslog.NewLoggingLoader(inner, logger)
		doc, err := loader.LoadDocument(context.Background(), "showcase.html")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", doc)
		output := buf.String()
		assert.Contains(t, output, "load document")
		assert.Contains(t, output, "path=showcase.html")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentLoader{
			LoadDocumentFn: func(_ context.Context, path string) (string, error) {
				return "", errors.New("permission denied")
			},
		}

		loader := tsslog.NewLoggingLoader(inner, logger)
		_, err := loader.LoadDocument(context.Background(), "index.html")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"permission denied\"")
	})
}
