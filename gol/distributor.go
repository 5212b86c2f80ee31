package gol

import (
	"context"
	"fmt"

	"uk.ac.bris.cs/halolife/comm"
	"uk.ac.bris.cs/halolife/evolve"
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/halo"
	"uk.ac.bris.cs/halolife/partition"
	"uk.ac.bris.cs/halolife/pgm"
	"uk.ac.bris.cs/halolife/snapshot"
	"uk.ac.bris.cs/halolife/stubs"
)

const (
	tagScatter = 10
	tagDims    = 12
)

// Run executes the part of a run that belongs to the rank of c. Every rank of
// the group must call it with the same Params. Only rank 0 touches the input
// image and the snapshots, and only rank 0 sends on events, which it closes
// on return.
func Run(ctx context.Context, p Params, c comm.Comm, events chan<- Event) error {
	var sender *Sender
	if c.Rank() == 0 {
		sender = &Sender{Events: events}
		defer sender.Close()
	}
	if err := p.Validate(); err != nil {
		return err
	}
	switch {
	case p.Action == ActionInit:
		if c.Rank() != 0 {
			return nil
		}
		_, err := Initialise(p)
		return err
	case !p.Policy.Distributed():
		if c.Rank() != 0 {
			return nil
		}
		return runOrdered(ctx, p, sender)
	}
	d := &distributor{p: p, comm: c, sender: sender}
	return d.run(ctx)
}

// distributor drives one rank through scatter, evolution and gathers.
type distributor struct {
	p      Params
	comm   comm.Comm
	sender *Sender

	rows, cols int
	part       partition.Partition
	world      *grid.Grid // whole input, rank 0 only
}

func (d *distributor) run(ctx context.Context) error {
	if err := d.shareDimensions(ctx); err != nil {
		return err
	}
	part, err := partition.New(d.rows, d.cols, d.comm.Size(), d.comm.Rank())
	if err != nil {
		return err
	}
	d.part = part
	band, err := d.scatter(ctx)
	if err != nil {
		return err
	}
	if err := comm.Barrier(ctx, d.comm); err != nil {
		return err
	}

	stepper := evolve.NewStepper(d.p.Policy, evolve.NewEngine(d.p.Threads), halo.NewExchanger(d.comm, part), band)
	collector := snapshot.NewCollector(d.comm, d.rows, d.cols)
	writer := snapshot.DiskWriter{Dir: d.p.SnapshotDir}
	final := d.world
	bandBuf := make([]byte, part.Cells())

	d.sender.SendWorld(0, d.world)
	d.sender.SendStateChange(0, Executing)
	for step := 1; step <= d.p.Turns; step++ {
		if err := stepper.Step(ctx); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		d.sender.SendTurnComplete(step)
		if !snapshot.Due(step, d.p.SnapshotStride, d.p.Turns) {
			continue
		}
		stepper.BandInto(bandBuf)
		world, err := collector.Gather(ctx, bandBuf)
		if err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if world == nil {
			continue
		}
		name, err := writer.Write(world, step)
		if err != nil {
			return err
		}
		d.sender.SendWorld(step, world)
		d.sender.SendImageOutput(step, name)
		final = world
	}
	if err := comm.Barrier(ctx, d.comm); err != nil {
		return err
	}
	if final != nil {
		d.sender.SendFinalTurn(d.p.Turns, stubs.GetAliveCells(final))
		d.sender.SendStateChange(d.p.Turns, Quitting)
	}
	return nil
}

// shareDimensions loads the input on rank 0 and broadcasts its shape. A
// negative row count tells the other ranks that rank 0 failed.
func (d *distributor) shareDimensions(ctx context.Context) error {
	if d.comm.Rank() != 0 {
		dims, err := comm.RecvInts(ctx, d.comm, 0, tagDims, 2)
		if err != nil {
			return err
		}
		if dims[0] < 0 {
			return ErrAborted
		}
		d.rows, d.cols = dims[0], dims[1]
		return nil
	}

	world, loadErr := load(d.p.InputPath())
	rows, cols := -1, -1
	if loadErr == nil {
		d.world = world
		rows, cols = world.Rows(), world.Cols()
	}
	for dst := 1; dst < d.comm.Size(); dst++ {
		if err := comm.SendInts(ctx, d.comm, dst, tagDims, rows, cols); err != nil {
			return err
		}
	}
	if loadErr != nil {
		return loadErr
	}
	d.rows, d.cols = rows, cols
	return nil
}

func load(path string) (*grid.Grid, error) {
	rows, cols, err := pgm.ReadDimensions(path)
	if err != nil {
		return nil, err
	}
	return pgm.Read(path, rows, cols)
}

// scatter hands every rank its band of the input world.
func (d *distributor) scatter(ctx context.Context) (*grid.Grid, error) {
	if d.comm.Rank() != 0 {
		msg, err := d.comm.Recv(ctx, 0, tagScatter)
		if err != nil {
			return nil, err
		}
		band, err := grid.FromBytes(d.part.LocalRows, d.part.LocalCols, msg)
		if err != nil {
			return nil, fmt.Errorf("scatter: %w", err)
		}
		return band, nil
	}
	parts, err := partition.Layout(d.rows, d.cols, d.comm.Size())
	if err != nil {
		return nil, err
	}
	for _, p := range parts[1:] {
		start, end := p.Span()
		if err := d.comm.Send(ctx, p.Rank, tagScatter, d.world.Bytes()[start:end]); err != nil {
			return nil, err
		}
	}
	start, end := d.part.Span()
	return grid.FromBytes(d.part.LocalRows, d.part.LocalCols, d.world.Bytes()[start:end])
}
