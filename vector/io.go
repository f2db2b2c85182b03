package vector

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/lsgraph/internal/fsutil"
)

// Magic opens every binary vector file.
const Magic = "MSR0"

var (
	// ErrBadMagic is returned by Load for files not starting with Magic.
	ErrBadMagic = errors.New("vector: bad magic")

	// ErrTruncated is returned when a file holds fewer values than its count.
	ErrTruncated = errors.New("vector: truncated")

	// ErrMalformed is returned by ReadText for unparsable input.
	ErrMalformed = errors.New("vector: malformed text")
)

// Load reads a binary vector file.
func Load(path string) (Vector, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if len(b) < 8 || string(b[:4]) != Magic {
		return nil, fmt.Errorf("Load(%s): %w", path, ErrBadMagic)
	}
	n := int(binary.NativeEndian.Uint32(b[4:8]))
	if len(b)-8 < n*8 {
		return nil, fmt.Errorf("Load(%s): %d values announced, %d bytes present: %w", path, n, len(b)-8, ErrTruncated)
	}
	v := make(Vector, n)
	for i := range v {
		v[i] = math.Float64frombits(binary.NativeEndian.Uint64(b[8+8*i:]))
	}

	return v, nil
}

// Store writes v as a binary vector file, atomically replacing path.
func Store(path string, v Vector) error {
	return fsutil.WriteAtomic(path, func(f *os.File) error {
		w := bufio.NewWriter(f)
		var buf [8]byte
		if _, err := w.WriteString(Magic); err != nil {
			return err
		}
		binary.NativeEndian.PutUint32(buf[:4], uint32(len(v)))
		if _, err := w.Write(buf[:4]); err != nil {
			return err
		}
		for _, x := range v {
			binary.NativeEndian.PutUint64(buf[:], math.Float64bits(x))
			if _, err := w.Write(buf[:]); err != nil {
				return err
			}
		}

		return w.Flush()
	})
}

// ReadText parses the text format: a count, then that many values,
// separated by any white space.
func ReadText(r io.Reader) (Vector, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("ReadText: %w", err)
		}
		return nil, fmt.Errorf("ReadText: missing count: %w", ErrMalformed)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("ReadText: bad count %q: %w", sc.Text(), ErrMalformed)
	}
	v := make(Vector, n)
	for i := range v {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("ReadText: %w", err)
			}
			return nil, fmt.Errorf("ReadText: %d of %d values: %w", i, n, ErrTruncated)
		}
		if v[i], err = strconv.ParseFloat(sc.Text(), 64); err != nil {
			return nil, fmt.Errorf("ReadText: value %d %q: %w", i, sc.Text(), ErrMalformed)
		}
	}

	return v, nil
}

// WriteText writes v in the text format with round-tripping precision.
func WriteText(w io.Writer, v Vector) error {
	bw := bufio.NewWriter(w)
	line := strconv.AppendInt(nil, int64(len(v)), 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}
	for _, x := range v {
		line = strconv.AppendFloat(line[:0], x, 'g', -1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
	}

	return bw.Flush()
}
