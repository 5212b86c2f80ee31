// Package evolve computes generations of the automaton under the three
// update policies.
package evolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/halo"
)

// Engine applies whole-band passes, splitting the interior rows into one
// contiguous range per thread.
type Engine struct {
	threads int
}

func NewEngine(threads int) *Engine {
	if threads < 1 {
		threads = 1
	}
	return &Engine{threads: threads}
}

func (e *Engine) Threads() int { return e.threads }

// ranges splits padded rows 1..rows into at most threads [lo, hi) ranges;
// the last range takes the remainder.
func ranges(rows, threads int) [][2]int {
	if threads > rows {
		threads = rows
	}
	if threads < 1 {
		return nil
	}
	size := rows / threads
	out := make([][2]int, threads)
	for i := range out {
		out[i] = [2]int{1 + i*size, 1 + (i+1)*size}
	}
	out[threads-1][1] = rows + 1
	return out
}

// pass writes rule(cell, neighbours) of every interior cell of cur into next.
// Each goroutine owns a disjoint row range of next.
func (e *Engine) pass(ctx context.Context, cur, next *grid.Halo, rule func(byte, int) byte) error {
	g, ctx := errgroup.WithContext(ctx)
	cols := cur.Cols()
	for _, span := range ranges(cur.Rows(), e.threads) {
		lo, hi := span[0], span[1]
		g.Go(func() error {
			for r := lo; r < hi; r++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				above, row, below := cur.Row(r-1), cur.Row(r), cur.Row(r+1)
				out := next.Row(r)
				for c := 1; c <= cols; c++ {
					out[c] = rule(row[c], count(above, row, below, c))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) Synchronous(ctx context.Context, cur, next *grid.Halo) error {
	return e.pass(ctx, cur, next, Rule)
}

func (e *Engine) Black(ctx context.Context, cur, next *grid.Halo) error {
	return e.pass(ctx, cur, next, blackRule)
}

func (e *Engine) White(ctx context.Context, cur, next *grid.Halo) error {
	return e.pass(ctx, cur, next, whiteRule)
}

// OrderedStep advances a whole-grid halo by one generation in place, in
// row-major order. The periodic border is recomputed before the scan and
// after every write, so each count sees all earlier writes, wrapped ones
// included.
func OrderedStep(h *grid.Halo) {
	halo.Periodic(h)
	for r := 1; r <= h.Rows(); r++ {
		for c := 1; c <= h.Cols(); c++ {
			n := NeighborCount(h, r, c)
			switch {
			case n < 2 || n > 3:
				h.Set(r, c, grid.Dead)
				halo.Periodic(h)
			case n == 3:
				h.Set(r, c, grid.Alive)
				halo.Periodic(h)
			}
		}
	}
}
