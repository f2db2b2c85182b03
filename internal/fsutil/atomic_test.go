package fsutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/internal/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	require.NoError(t, fsutil.WriteAtomic(path, func(f *os.File) error {
		_, err := f.WriteString("first")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	boom := errors.New("boom")
	err = fsutil.WriteAtomic(path, func(f *os.File) error {
		_, _ = f.WriteString("partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data), "failed write must not replace the file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be removed")
}
