package build_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/tabsplit"
	"github.com/fwojciec/tabsplit/build"
	"github.com/fwojciec/tabsplit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakes bundles mocks wired with sensible defaults that individual tests
// override.
type fakes struct {
	loader    *mock.DocumentLoader
	fragments *mock.FragmentExtractor
	sections  *mock.SectionExtractor
	links     *mock.LinkRewriter
	writer    *mock.PageWriter

	prepared bool
	written  map[string]string
}

func newFakes() *fakes {
	f := &fakes{written: make(map[string]string)}
	f.loader = &mock.DocumentLoader{
		LoadDocumentFn: func(_ context.Context, path string) (string, error) {
			return "<html>" + path + "</html>", nil
		},
	}
	f.fragments = &mock.FragmentExtractor{
		ExtractFragmentsFn: func(html string) (*tabsplit.Fragments, error) {
			return &tabsplit.Fragments{
				Header: "<header>H</header>",
				Footer: "<footer>F</footer>",
				Styles: "<style>s</style>",
			}, nil
		},
	}
	f.sections = &mock.SectionExtractor{
		ExtractSectionFn: func(html string, id string) (string, error) {
			return "<p>" + id + "</p>", nil
		},
	}
	f.links = &mock.LinkRewriter{
		RewriteFragmentFn: func(html string, selfLink string) (string, error) {
			return html, nil
		},
		RewriteCSSFn: func(css string) string {
			return css
		},
	}
	f.writer = &mock.PageWriter{
		PrepareFn: func(_ context.Context) error {
			f.prepared = true
			return nil
		},
		WritePageFn: func(_ context.Context, name string, content string) (string, error) {
			f.written[name] = content
			return "out/" + name, nil
		},
	}
	return f
}

func (f *fakes) builder() *build.Builder {
	return &build.Builder{
		Loader:    f.loader,
		Fragments: f.fragments,
		Sections:  f.sections,
		Links:     f.links,
		Writer:    f.writer,
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("writes one page per section in order", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		var events []build.ProgressEvent

		result, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), func(e build.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		assert.True(t, f.prepared)
		assert.Len(t, f.written, 10)
		assert.Empty(t, result.Missing)
		require.Len(t, result.Written, 10)
		assert.Equal(t, "out/overview.html", result.Written[0])
		assert.Equal(t, "out/photos.html", result.Written[9])

		require.Len(t, events, 10)
		for i, e := range events {
			assert.Equal(t, build.ProgressCreated, e.Type)
			assert.Equal(t, i+1, e.Completed)
			assert.Equal(t, 10, e.Total)
		}
		assert.Equal(t, "cards", events[2].Section.ID)
	})

	t.Run("renders fragments and content into the page", func(t *testing.T) {
		t.Parallel()

		f := newFakes()

		_, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.NoError(t, err)
		page := f.written["tokens.html"]
		assert.Contains(t, page, "<title>Design Tokens Demo | Framework Showcase</title>")
		assert.Contains(t, page, "<header>H</header>")
		assert.Contains(t, page, "<footer>F</footer>")
		assert.Contains(t, page, "<style>s</style>")
		assert.Contains(t, page, "<p>tokens</p>")
	})

	t.Run("rewrites url references in the shared styles", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.links.RewriteCSSFn = func(css string) string {
			return strings.ReplaceAll(css, ">s<", ">rewritten<")
		}

		_, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.NoError(t, err)
		assert.Contains(t, f.written["layout.html"], "<style>rewritten</style>")
	})

	t.Run("rewrites the footer with the catalog self link", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		selfLinks := make(map[string]string)
		f.links.RewriteFragmentFn = func(html string, selfLink string) (string, error) {
			selfLinks[html] = selfLink
			return html, nil
		}

		_, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.NoError(t, err)
		assert.Equal(t, "", selfLinks["<header>H</header>"])
		assert.Equal(t, "showcase.html", selfLinks["<footer>F</footer>"])
	})

	t.Run("loads catalog and reference from configured paths", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		var loaded []string
		f.loader.LoadDocumentFn = func(_ context.Context, path string) (string, error) {
			loaded = append(loaded, path)
			return "", nil
		}
		cfg := tabsplit.DefaultConfig()
		cfg.CatalogPath = "site/catalog.html"
		cfg.ReferencePath = "site/home.html"

		_, err := f.builder().Build(context.Background(), cfg, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"site/catalog.html", "site/home.html"}, loaded)
	})

	t.Run("skips missing sections and keeps going", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.sections.ExtractSectionFn = func(html string, id string) (string, error) {
			if id == "photos" {
				return "", tabsplit.Errorf(tabsplit.ENOTFOUND, "could not find content for %s", id)
			}
			return "<p>" + id + "</p>", nil
		}
		var missing []build.ProgressEvent

		result, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), func(e build.ProgressEvent) {
			if e.Type == build.ProgressMissing {
				missing = append(missing, e)
			}
		})

		require.NoError(t, err)
		assert.Len(t, f.written, 9)
		assert.NotContains(t, f.written, "photos.html")
		assert.Equal(t, []string{"photos"}, result.Missing)
		require.Len(t, missing, 1)
		assert.Equal(t, "photos", missing[0].Section.ID)
		assert.Equal(t, tabsplit.ENOTFOUND, tabsplit.ErrorCode(missing[0].Error))
	})

	t.Run("aborts on unexpected extraction errors", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.sections.ExtractSectionFn = func(html string, id string) (string, error) {
			return "", tabsplit.Errorf(tabsplit.EINVALID, "failed to parse HTML")
		}

		_, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.Error(t, err)
		assert.Equal(t, tabsplit.EINVALID, tabsplit.ErrorCode(err))
		assert.Empty(t, f.written)
	})

	t.Run("aborts before preparing output when the catalog is missing", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.loader.LoadDocumentFn = func(_ context.Context, path string) (string, error) {
			if path == "showcase.html" {
				return "", tabsplit.Errorf(tabsplit.ENOTFOUND, "document %s does not exist", path)
			}
			return "<html></html>", nil
		}

		_, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.Error(t, err)
		assert.Equal(t, tabsplit.ENOTFOUND, tabsplit.ErrorCode(err))
		assert.False(t, f.prepared)
		assert.Empty(t, f.written)
	})

	t.Run("aborts before preparing output when the reference is missing", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.loader.LoadDocumentFn = func(_ context.Context, path string) (string, error) {
			if path == "index.html" {
				return "", errors.New("permission denied")
			}
			return "<html></html>", nil
		}

		_, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load reference")
		assert.False(t, f.prepared)
	})

	t.Run("fails when output cannot be prepared", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.writer.PrepareFn = func(_ context.Context) error {
			return errors.New("read-only file system")
		}

		_, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "prepare output")
		assert.Empty(t, f.written)
	})

	t.Run("fails when a page cannot be written", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.writer.WritePageFn = func(_ context.Context, name string, content string) (string, error) {
			return "", errors.New("disk full")
		}

		result, err := f.builder().Build(context.Background(), tabsplit.DefaultConfig(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "overview.html")
		assert.Empty(t, result.Written)
	})

	t.Run("rejects invalid configuration before loading", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		f.loader.LoadDocumentFn = func(_ context.Context, path string) (string, error) {
			t.Fatal("loader should not be called")
			return "", nil
		}
		cfg := tabsplit.DefaultConfig()
		cfg.Sections = nil

		_, err := f.builder().Build(context.Background(), cfg, nil)

		assert.Equal(t, tabsplit.EINVALID, tabsplit.ErrorCode(err))
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()

		f := newFakes()
		ctx, cancel := context.WithCancel(context.Background())
		f.writer.WritePageFn = func(_ context.Context, name string, content string) (string, error) {
			cancel()
			return "out/" + name, nil
		}

		result, err := f.builder().Build(ctx, tabsplit.DefaultConfig(), nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, result.Written, 1)
	})
}

func TestBuilder_DryRun(t *testing.T) {
	t.Parallel()

	f := newFakes()
	b := f.builder()
	b.DryRun = true
	b.Writer = nil

	result, err := b.Build(context.Background(), tabsplit.DefaultConfig(), nil)

	require.NoError(t, err)
	assert.False(t, f.prepared)
	assert.Empty(t, f.written)
	require.Len(t, result.Written, 10)
	assert.Equal(t, "demo/overview.html", result.Written[0])
}
