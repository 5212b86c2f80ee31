// Package pgm reads and writes grids as binary greymap images: an ASCII
// header "P5 <rows> <cols>\n255\n" followed by one raw byte per cell,
// row-major. Alive cells are black (0) and dead cells white (255).
package pgm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"uk.ac.bris.cs/halolife/grid"
)

const (
	Magic  = "P5"
	MaxVal = 255
	Ext    = ".pgm"
)

var (
	ErrBadHeader = errors.New("pgm: invalid header")
	ErrShortData = errors.New("pgm: truncated pixel data")
)

// AddExt appends the image extension to a base name unless already present.
func AddExt(name string) string {
	if strings.HasSuffix(name, Ext) {
		return name
	}
	return name + Ext
}

func readHeader(r *bufio.Reader) (rows, cols int, err error) {
	var magic string
	var maxval int
	if _, err := fmt.Fscan(r, &magic, &rows, &cols, &maxval); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if magic != Magic {
		return 0, 0, fmt.Errorf("%w: magic %q", ErrBadHeader, magic)
	}
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return 0, 0, fmt.Errorf("%w: shape %dx%d", ErrBadHeader, rows, cols)
	}
	if maxval != MaxVal {
		return 0, 0, fmt.Errorf("%w: maxval %d", ErrBadHeader, maxval)
	}
	// A single whitespace byte separates the header from the pixels.
	b, err := r.ReadByte()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	switch b {
	case ' ', '\t', '\n', '\r':
	default:
		return 0, 0, fmt.Errorf("%w: no separator after maxval", ErrBadHeader)
	}
	return rows, cols, nil
}

// Decode reads a whole image. The pixel buffer grows with the data actually
// read, so a header claiming more cells than the stream holds fails with
// ErrShortData.
func Decode(r io.Reader) (*grid.Grid, error) {
	br := bufio.NewReader(r)
	rows, cols, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	return readPixels(br, rows, cols)
}

func readPixels(r io.Reader, rows, cols int) (*grid.Grid, error) {
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(rows)*int64(cols)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortData, err)
	}
	return grid.FromBytes(rows, cols, buf.Bytes())
}

// Encode writes g with its header.
func Encode(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s %d %d\n%d\n", Magic, g.Rows(), g.Cols(), MaxVal); err != nil {
		return err
	}
	if _, err := bw.Write(g.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadDimensions returns the shape recorded in the header of path.
func ReadDimensions(path string) (rows, cols int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	rows, cols, err = readHeader(bufio.NewReader(f))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", path, err)
	}
	return rows, cols, nil
}

// Read loads the image at path. The header must match rows x cols.
func Read(path string, rows, cols int) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	hr, hc, err := readHeader(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if hr != rows || hc != cols {
		return nil, fmt.Errorf("%s: %w: %dx%d, want %dx%d", path, ErrBadHeader, hr, hc, rows, cols)
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	left := info.Size() - (pos - int64(br.Buffered()))
	if int64(rows)*int64(cols) > left {
		return nil, fmt.Errorf("%s: %w: %dx%d cells, %d bytes after header", path, ErrShortData, rows, cols, left)
	}
	g, err := readPixels(br, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write stores g at path, creating parent directories as needed.
func Write(path string, g *grid.Grid) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
