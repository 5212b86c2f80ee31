package gol

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"uk.ac.bris.cs/halolife/comm"
)

// RunLocal runs a whole group of workers as goroutines of this process.
// The first worker to fail cancels the others.
func RunLocal(ctx context.Context, p Params, workers int, events chan<- Event) error {
	if workers < 1 {
		if events != nil {
			close(events)
		}
		return fmt.Errorf("%w: %d workers", ErrInvalidParams, workers)
	}
	group := comm.NewLocal(workers)
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range group {
		var ev chan<- Event
		if c.Rank() == 0 {
			ev = events
		}
		g.Go(func() error {
			defer c.Close()
			if err := Run(ctx, p, c, ev); err != nil {
				return fmt.Errorf("worker %d: %w", c.Rank(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
