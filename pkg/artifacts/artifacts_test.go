// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package artifacts

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInit(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Init())

	for _, dir := range []string{store.ShotsDir, store.SourcesDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestScreenshotPathStamped(t *testing.T) {
	store := NewStore("/artifacts")
	path := store.ScreenshotPath("example", "png")

	assert.Equal(t, filepath.Join("/artifacts", "shots"), filepath.Dir(path))
	assert.Regexp(t, regexp.MustCompile(`^example-\d{6}-\d{4}\.png$`), filepath.Base(path))
}

func TestFlush(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Init())

	_, err := store.WriteSource("example", "<html></html>")
	require.NoError(t, err)

	require.NoError(t, store.Flush())

	entries, err := os.ReadDir(store.SourcesDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFlushMissingDirs(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))
	assert.NoError(t, store.Flush())
}

func TestWriteSource(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Init())

	path, err := store.WriteSource("example", "<html></html>")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
	assert.Regexp(t, regexp.MustCompile(`\.html$`), path)
}
