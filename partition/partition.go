// Package partition splits the grid into contiguous row bands, one per
// worker, arranged on a ring.
package partition

import (
	"errors"
	"fmt"
)

var ErrDegenerate = errors.New("partition: degenerate partition")

// Partition describes the band owned by one rank. Columns are never split.
type Partition struct {
	Rank      int
	Size      int
	RowOffset int
	LocalRows int
	LocalCols int
	Upper     int // rank owning the rows above, wrapping from 0 to Size-1
	Lower     int // rank owning the rows below, wrapping from Size-1 to 0
}

// Validate rejects shapes that would leave a rank without rows.
func Validate(rows, cols, size int) error {
	switch {
	case size < 1:
		return fmt.Errorf("%w: %d workers", ErrDegenerate, size)
	case rows < 1 || cols < 1:
		return fmt.Errorf("%w: %dx%d grid", ErrDegenerate, rows, cols)
	case rows < size:
		return fmt.Errorf("%w: %d rows for %d workers", ErrDegenerate, rows, size)
	}
	return nil
}

// New computes the band of rank. Every rank gets rows/size rows except the
// last, which also takes the rows%size remainder.
func New(rows, cols, size, rank int) (Partition, error) {
	if err := Validate(rows, cols, size); err != nil {
		return Partition{}, err
	}
	if rank < 0 || rank >= size {
		return Partition{}, fmt.Errorf("%w: rank %d of %d", ErrDegenerate, rank, size)
	}
	base := rows / size
	p := Partition{
		Rank:      rank,
		Size:      size,
		RowOffset: rank * base,
		LocalRows: base,
		LocalCols: cols,
		Upper:     rank - 1,
		Lower:     rank + 1,
	}
	if rank == size-1 {
		p.LocalRows += rows % size
		p.Lower = 0
	}
	if rank == 0 {
		p.Upper = size - 1
	}
	return p, nil
}

// Layout returns the partitions of every rank in rank order.
func Layout(rows, cols, size int) ([]Partition, error) {
	if err := Validate(rows, cols, size); err != nil {
		return nil, err
	}
	parts := make([]Partition, size)
	for rank := range parts {
		p, err := New(rows, cols, size, rank)
		if err != nil {
			return nil, err
		}
		parts[rank] = p
	}
	return parts, nil
}

// Cells is the number of interior cells in the band.
func (p Partition) Cells() int { return p.LocalRows * p.LocalCols }

// Span returns the [start, end) range of the band in a row-major global buffer.
func (p Partition) Span() (start, end int) {
	start = p.RowOffset * p.LocalCols
	return start, start + p.Cells()
}
