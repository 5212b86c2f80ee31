package snapshot

import (
	"context"
	"fmt"

	"uk.ac.bris.cs/halolife/comm"
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/partition"
)

// TagGather carries band interiors to rank 0.
const TagGather = 11

// Collector assembles the global grid on rank 0.
type Collector struct {
	comm       comm.Comm
	rows, cols int
}

func NewCollector(c comm.Comm, rows, cols int) *Collector {
	return &Collector{comm: c, rows: rows, cols: cols}
}

// Gather sends band, the interior of this rank's partition without ghosts,
// to rank 0. On rank 0 it returns the whole grid with the bands placed in
// rank order; on every other rank it returns nil.
func (c *Collector) Gather(ctx context.Context, band []byte) (*grid.Grid, error) {
	if c.comm.Rank() != 0 {
		return nil, c.comm.Send(ctx, 0, TagGather, band)
	}
	parts, err := partition.Layout(c.rows, c.cols, c.comm.Size())
	if err != nil {
		return nil, err
	}
	g := grid.New(c.rows, c.cols)
	for _, p := range parts {
		start, end := p.Span()
		if p.Rank == 0 {
			if len(band) != end-start {
				return nil, fmt.Errorf("%w: own band has %d cells, want %d", comm.ErrSize, len(band), end-start)
			}
			copy(g.Bytes()[start:end], band)
			continue
		}
		msg, err := c.comm.Recv(ctx, p.Rank, TagGather)
		if err != nil {
			return nil, fmt.Errorf("gather from rank %d: %w", p.Rank, err)
		}
		if len(msg) != end-start {
			return nil, fmt.Errorf("%w: rank %d sent %d cells, want %d", comm.ErrSize, p.Rank, len(msg), end-start)
		}
		copy(g.Bytes()[start:end], msg)
	}
	return g, nil
}
