package grid

// Halo is a grid padded by one ghost row above and below and one ghost column
// left and right. Interior cells live at padded coordinates [1..Rows] x
// [1..Cols]; everything else mirrors a neighbouring region and is only valid
// after a refresh.
type Halo struct {
	rows, cols int
	padded     *Grid
}

// NewHalo returns a Dead halo grid with a rows x cols interior.
func NewHalo(rows, cols int) *Halo {
	return &Halo{rows: rows, cols: cols, padded: New(rows+2, cols+2)}
}

// HaloFrom copies g into the interior of a fresh halo grid.
func HaloFrom(g *Grid) *Halo {
	h := NewHalo(g.Rows(), g.Cols())
	h.Load(g)
	return h
}

// Rows and Cols report the interior shape.
func (h *Halo) Rows() int { return h.rows }
func (h *Halo) Cols() int { return h.cols }

// Padded exposes the full (Rows+2) x (Cols+2) buffer, ghosts included.
func (h *Halo) Padded() *Grid { return h.padded }

// At and Set use padded coordinates: 0 and Rows+1 are ghost rows, 0 and
// Cols+1 ghost columns.
func (h *Halo) At(r, c int) byte     { return h.padded.At(r, c) }
func (h *Halo) Set(r, c int, v byte) { h.padded.Set(r, c, v) }

// Row returns padded row r, ghost columns included.
func (h *Halo) Row(r int) []byte { return h.padded.Row(r) }

// InteriorRow returns the Cols interior cells of padded row r.
func (h *Halo) InteriorRow(r int) []byte { return h.padded.Row(r)[1 : h.cols+1] }

// Load copies g into the interior. g must match the interior shape.
func (h *Halo) Load(g *Grid) {
	if g.Rows() != h.rows || g.Cols() != h.cols {
		panic("grid: halo load with mismatched shape")
	}
	for r := 0; r < h.rows; r++ {
		copy(h.InteriorRow(r+1), g.Row(r))
	}
}

// Interior returns a copy of the interior without ghosts.
func (h *Halo) Interior() *Grid {
	g := New(h.rows, h.cols)
	h.InteriorInto(g.Bytes())
	return g
}

// InteriorInto writes the interior row-major into dst, which must hold
// Rows*Cols cells.
func (h *Halo) InteriorInto(dst []byte) {
	for r := 0; r < h.rows; r++ {
		copy(dst[r*h.cols:(r+1)*h.cols], h.InteriorRow(r+1))
	}
}
