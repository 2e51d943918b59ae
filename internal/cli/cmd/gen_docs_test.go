package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocs_Markdown(t *testing.T) {
	files, err := writeDocs(rootCmd, "markdown", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, files, "clipfetch.md")
	assert.Contains(t, files, "clipfetch_get.md")
	assert.Contains(t, files, "clipfetch_config_show.md")
}

func TestWriteDocs_Man(t *testing.T) {
	files, err := writeDocs(rootCmd, "man", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, files, "clipfetch.1")
	assert.Contains(t, files, "clipfetch-watch.1")
}

func TestWriteDocs_UnknownFormat(t *testing.T) {
	_, err := writeDocs(rootCmd, "pdf", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestDefaultDocsDir(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	dir, err := defaultDocsDir("man")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data/man/man1", dir)

	dir, err = defaultDocsDir("markdown")
	require.NoError(t, err)
	assert.Equal(t, "docs", dir)
}

func TestManDate(t *testing.T) {
	got := manDate("2025-06-01T12:00:00Z")
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), got.UTC())

	assert.WithinDuration(t, time.Now(), *manDate("unknown"), time.Minute)
}

func TestPrintGenerated(t *testing.T) {
	var out bytes.Buffer
	printGenerated(&out, "docs", []string{"clipfetch.md", "clipfetch_get.md"})

	assert.Contains(t, out.String(), "Wrote 2 pages to docs")
	assert.Contains(t, out.String(), "  - clipfetch_get.md")
}
