package gol

import (
	"context"
	"fmt"

	"uk.ac.bris.cs/halolife/evolve"
	"uk.ac.bris.cs/halolife/snapshot"
	"uk.ac.bris.cs/halolife/stubs"
)

// runOrdered evolves the whole world serially on the calling goroutine. No
// partitioning or messaging is involved.
func runOrdered(ctx context.Context, p Params, sender *Sender) error {
	world, err := load(p.InputPath())
	if err != nil {
		return err
	}
	stepper := evolve.NewStepper(evolve.Ordered, nil, nil, world)
	writer := snapshot.DiskWriter{Dir: p.SnapshotDir}

	sender.SendWorld(0, world)
	sender.SendStateChange(0, Executing)
	for step := 1; step <= p.Turns; step++ {
		if err := stepper.Step(ctx); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		sender.SendTurnComplete(step)
		if !snapshot.Due(step, p.SnapshotStride, p.Turns) {
			continue
		}
		world = stepper.Band()
		name, err := writer.Write(world, step)
		if err != nil {
			return err
		}
		sender.SendWorld(step, world)
		sender.SendImageOutput(step, name)
	}
	sender.SendFinalTurn(p.Turns, stubs.GetAliveCells(world))
	sender.SendStateChange(p.Turns, Quitting)
	return nil
}
