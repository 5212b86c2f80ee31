// Package halo refreshes the ghost border of a worker's band so that the
// global grid behaves as a torus.
package halo

import (
	"context"

	"uk.ac.bris.cs/halolife/comm"
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/partition"
)

// Row exchange tags.
const (
	TagUp   = 0 // first interior row, sent to the upper neighbour
	TagDown = 1 // last interior row, sent to the lower neighbour
)

// Exchanger swaps edge rows with the two ring neighbours of one rank.
type Exchanger struct {
	comm comm.Comm
	part partition.Partition
}

func NewExchanger(c comm.Comm, part partition.Partition) *Exchanger {
	return &Exchanger{comm: c, part: part}
}

// ExchangeRows sends the first interior row up and the last one down, and
// fills the bottom ghost row from the lower neighbour and the top ghost row
// from the upper one. All four transfers run concurrently and are awaited
// together. Ghost columns are not transferred.
func (e *Exchanger) ExchangeRows(ctx context.Context, h *grid.Halo) error {
	rows := h.Rows()
	var set comm.RequestSet
	for _, req := range []*comm.Request{
		comm.Isend(ctx, e.comm, e.part.Upper, TagUp, h.InteriorRow(1)),
		comm.Irecv(ctx, e.comm, e.part.Lower, TagUp, h.InteriorRow(rows+1)),
		comm.Isend(ctx, e.comm, e.part.Lower, TagDown, h.InteriorRow(rows)),
		comm.Irecv(ctx, e.comm, e.part.Upper, TagDown, h.InteriorRow(0)),
	} {
		if err := set.Add(req); err != nil {
			set.WaitAll()
			return err
		}
	}
	return set.WaitAll()
}

// Refresh brings every ghost cell up to date: rows first, then columns.
func (e *Exchanger) Refresh(ctx context.Context, h *grid.Halo) error {
	if err := e.ExchangeRows(ctx, h); err != nil {
		return err
	}
	ComputeColumns(h)
	return nil
}

// ComputeColumns wraps columns within the band, ghost rows included, so the
// corners pick up the wrapped ends of the neighbours' rows.
func ComputeColumns(h *grid.Halo) {
	cols := h.Cols()
	for r := 0; r < h.Rows()+2; r++ {
		row := h.Row(r)
		row[0] = row[cols]
		row[cols+1] = row[1]
	}
}

// ComputeRows wraps rows of a halo that covers the whole grid.
func ComputeRows(h *grid.Halo) {
	rows := h.Rows()
	copy(h.InteriorRow(0), h.InteriorRow(rows))
	copy(h.InteriorRow(rows+1), h.InteriorRow(1))
}

// Periodic refreshes a whole-grid halo without communication.
func Periodic(h *grid.Halo) {
	ComputeRows(h)
	ComputeColumns(h)
}

// Torus refreshes halos that hold the whole grid. It stands in for an
// Exchanger when a single worker owns every row.
type Torus struct{}

func (Torus) Refresh(ctx context.Context, h *grid.Halo) error {
	Periodic(h)
	return ctx.Err()
}
