// Package grid holds the cell buffers every other package works on: a flat
// row-major Grid and its halo-padded variant.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Cell states. The values come from the image format (black is alive) and are
// only ever compared, never used numerically.
const (
	Alive byte = 0
	Dead  byte = 255
)

var ErrShape = errors.New("grid: buffer does not match shape")

// Grid is a rows x cols matrix of cells stored row-major in one slice.
type Grid struct {
	rows, cols int
	cells      []byte
}

// New returns a grid with every cell Dead.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative shape %dx%d", rows, cols))
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]byte, rows*cols)}
	g.Fill(Dead)
	return g
}

// FromBytes wraps data (not copied) as a rows x cols grid.
func FromBytes(rows, cols int, data []byte) (*Grid, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrShape, rows, cols, len(data))
	}
	return &Grid{rows: rows, cols: cols, cells: data}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Bytes exposes the backing slice.
func (g *Grid) Bytes() []byte { return g.cells }

func (g *Grid) index(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("grid: cell (%d, %d) outside %dx%d", r, c, g.rows, g.cols))
	}
	return r*g.cols + c
}

func (g *Grid) At(r, c int) byte { return g.cells[g.index(r, c)] }

func (g *Grid) Set(r, c int, v byte) { g.cells[g.index(r, c)] = v }

// Row returns row r as a sub-slice of the backing buffer.
func (g *Grid) Row(r int) []byte {
	start := g.index(r, 0)
	return g.cells[start : start+g.cols]
}

func (g *Grid) Fill(v byte) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CountAlive returns the number of Alive cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, v := range g.cells {
		if v == Alive {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for alive and '.' for dead cells.
func (g *Grid) String() string {
	out := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for _, v := range g.Row(r) {
			if v == Alive {
				out = append(out, '#')
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

// Parse builds a grid from lines of '#' (alive) and '.' (dead).
func Parse(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return New(0, 0), nil
	}
	g := New(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrShape, r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '#':
				g.Set(r, c, Alive)
			case '.':
			default:
				return nil, fmt.Errorf("grid: unexpected %q at (%d, %d)", line[c], r, c)
			}
		}
	}
	return g, nil
}

// Random returns a grid where every cell is independently alive with
// probability one half.
func Random(rows, cols int, rng *rand.Rand) *Grid {
	g := New(rows, cols)
	for i := range g.cells {
		if rng.Intn(2) == 0 {
			g.cells[i] = Alive
		}
	}
	return g
}
