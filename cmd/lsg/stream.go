package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/lsgraph/internal/fsutil"
)

const (
	zstdSuffix = ".zst"
	stdio      = "-"
)

type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c())
	}

	return errors.Join(errs...)
}

// openText opens a text input: "-" is stdin, a .zst suffix means zstd.
func openText(path string) (io.ReadCloser, error) {
	var f *os.File
	if path == stdio {
		f = os.Stdin
	} else {
		var err error
		if f, err = os.Open(path); err != nil {
			return nil, err
		}
	}
	if !strings.HasSuffix(path, zstdSuffix) {
		return f, nil
	}
	dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(true))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd %s: %w", path, err)
	}

	return &multiCloser{
		Reader:  dec,
		closers: []func() error{func() error { dec.Close(); return nil }, f.Close},
	}, nil
}

// writeText streams fn's output to path: "" or "-" is stdout, other paths
// are replaced atomically, and a .zst suffix means zstd.
func writeText(stdout io.Writer, path string, fn func(w io.Writer) error) error {
	if path == "" || path == stdio {
		bw := bufio.NewWriter(stdout)
		if err := fn(bw); err != nil {
			return err
		}
		return bw.Flush()
	}

	return fsutil.WriteAtomic(path, func(f *os.File) error {
		if !strings.HasSuffix(path, zstdSuffix) {
			bw := bufio.NewWriter(f)
			if err := fn(bw); err != nil {
				return err
			}
			return bw.Flush()
		}
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return err
		}
		if err = fn(enc); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	})
}

// readLabels reads one label per line, stripping trailing CR/LF, stopping
// after n labels. Missing lines leave empty labels.
func readLabels(path string, n int) ([]string, error) {
	r, err := openText(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	labels := make([]string, n)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for i := 0; i < n && sc.Scan(); i++ {
		labels[i] = strings.TrimRight(sc.Text(), "\r\n")
	}

	return labels, sc.Err()
}
