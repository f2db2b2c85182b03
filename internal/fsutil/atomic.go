// Package fsutil holds small filesystem helpers shared by the file writers.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMode is applied to every file produced by WriteAtomic.
const FileMode os.FileMode = 0o644

// WriteAtomic creates a temporary file next to path, lets fn fill it, then
// fsyncs and renames it over path. On any failure the temporary file is
// removed and path is left untouched.
func WriteAtomic(path string, fn func(f *os.File) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("WriteAtomic(%s): %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = fn(f); err != nil {
		return err
	}
	if err = f.Chmod(FileMode); err != nil {
		return fmt.Errorf("WriteAtomic(%s): %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("WriteAtomic(%s): %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("WriteAtomic(%s): %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("WriteAtomic(%s): %w", path, err)
	}
	syncDir(dir)

	return nil
}

// syncDir makes the rename durable on filesystems that need it; failures are
// ignored because the data itself is already synced.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
