package gol

import (
	"errors"
	"flag"
	"fmt"
	"runtime"

	"uk.ac.bris.cs/halolife/evolve"
	"uk.ac.bris.cs/halolife/pgm"
	"uk.ac.bris.cs/halolife/snapshot"
)

// Action is what a run does with the input image.
type Action int

const (
	// ActionInit writes a random square world to the input image.
	ActionInit Action = iota
	// ActionRun evolves the world stored in the input image.
	ActionRun
)

func (a Action) String() string {
	if a == ActionRun {
		return "run"
	}
	return "init"
}

var (
	ErrMissingInput  = errors.New("gol: no input file name given (-f)")
	ErrInvalidParams = errors.New("gol: invalid parameters")
	ErrAborted       = errors.New("gol: run aborted by rank 0")
)

// Params provides the details of how to run the Game of Life and which image
// to load. It is built once at startup and passed by value.
type Params struct {
	Action         Action
	Policy         evolve.Policy
	GridSize       int    // side of the world written by ActionInit
	Turns          int    // generations to compute
	SnapshotStride int    // persist every SnapshotStride turns; 0 keeps only the last
	InputName      string // image base name, without extension
	Threads        int    // goroutines per worker
	SnapshotDir    string
	Seed           int64 // random world seed; 0 picks one from the clock
}

// DefaultParams mirrors the defaults of the command line.
func DefaultParams() Params {
	return Params{
		Action:      ActionInit,
		Policy:      evolve.Synchronous,
		GridSize:    1000,
		Turns:       100,
		Threads:     runtime.NumCPU(),
		SnapshotDir: snapshot.DefaultDir,
	}
}

// Register binds the flags of p to fs, using the current values as defaults.
// -i and -r set the action in the order they appear.
func (p *Params) Register(fs *flag.FlagSet) {
	fs.BoolFunc("i", "initialise: write a random k x k world to <f>.pgm", func(string) error {
		p.Action = ActionInit
		return nil
	})
	fs.BoolFunc("r", "run: evolve the world stored in <f>.pgm", func(string) error {
		p.Action = ActionRun
		return nil
	})
	fs.Var(&p.Policy, "e", "evolution policy: 0 ordered, 1 synchronous, 2 two-phase")
	fs.IntVar(&p.GridSize, "k", p.GridSize, "side of the square world written by -i")
	fs.IntVar(&p.Turns, "n", p.Turns, "number of generations to compute")
	fs.IntVar(&p.SnapshotStride, "s", p.SnapshotStride, "snapshot every s generations (0 only saves the last)")
	fs.StringVar(&p.InputName, "f", p.InputName, "image base name, without the .pgm extension")
	fs.IntVar(&p.Threads, "t", p.Threads, "goroutines per worker")
	fs.StringVar(&p.SnapshotDir, "snapshots", p.SnapshotDir, "directory snapshots are written to")
	fs.Int64Var(&p.Seed, "seed", p.Seed, "seed of the random world (0 uses the clock)")
}

// ParseFlags parses args into a validated Params. Flags the caller already
// defined on fs are parsed as well.
func ParseFlags(fs *flag.FlagSet, args []string) (Params, error) {
	p := DefaultParams()
	p.Register(fs)
	if err := fs.Parse(args); err != nil {
		return Params{}, err
	}
	return p, p.Validate()
}

func (p Params) Validate() error {
	if p.InputName == "" {
		return ErrMissingInput
	}
	switch p.Action {
	case ActionInit:
		if p.GridSize < 1 {
			return fmt.Errorf("%w: grid size %d", ErrInvalidParams, p.GridSize)
		}
	case ActionRun:
		switch {
		case p.Turns < 0:
			return fmt.Errorf("%w: %d turns", ErrInvalidParams, p.Turns)
		case p.SnapshotStride < 0:
			return fmt.Errorf("%w: snapshot stride %d", ErrInvalidParams, p.SnapshotStride)
		case p.Threads < 1:
			return fmt.Errorf("%w: %d threads", ErrInvalidParams, p.Threads)
		}
	default:
		return fmt.Errorf("%w: action %d", ErrInvalidParams, p.Action)
	}
	return nil
}

// InputPath is the image file the run reads or initialises.
func (p Params) InputPath() string { return pgm.AddExt(p.InputName) }
