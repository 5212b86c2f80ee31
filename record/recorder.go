package record

import (
	"errors"

	"uk.ac.bris.cs/halolife/gol"
	"uk.ac.bris.cs/halolife/stubs"
)

// Options selects the artefacts of a Recorder. An empty path disables the
// artefact.
type Options struct {
	VideoPath string
	ChartPath string
	FPS       int
	Scale     int
}

// Recorder rebuilds the world from CellsFlipped events and records every
// persisted generation.
type Recorder struct {
	opts  Options
	cells *stubs.CellsContainer
	video *Video
	pop   *Population
	done  bool
}

func NewRecorder(rows, cols int, opts Options) (*Recorder, error) {
	if opts.FPS < 1 {
		opts.FPS = 10
	}
	r := &Recorder{
		opts:  opts,
		cells: stubs.NewCellsContainer(rows, cols),
		pop:   NewPopulation(rows * cols),
	}
	if opts.VideoPath != "" {
		v, err := NewVideo(opts.VideoPath, rows, cols, opts.Scale, opts.FPS)
		if err != nil {
			return nil, err
		}
		r.video = v
	}
	return r, nil
}

// Observe folds one event into the recording. FinalTurnComplete closes the
// video and writes the chart.
func (r *Recorder) Observe(e gol.Event) error {
	switch e := e.(type) {
	case gol.CellsFlipped:
		r.cells.Flip(e.Cells, e.CompletedTurns)
		if e.CompletedTurns == 0 && r.video != nil {
			world, _ := r.cells.Get()
			return r.video.AddWorld(world, 0)
		}
	case gol.AliveCellsCount:
		r.pop.Add(e.CompletedTurns, e.CellsCount)
	case gol.ImageOutputComplete:
		if r.video != nil {
			world, _ := r.cells.Get()
			return r.video.AddWorld(world, e.CompletedTurns)
		}
	case gol.FinalTurnComplete:
		return r.finish()
	}
	return nil
}

func (r *Recorder) finish() error {
	if r.done {
		return nil
	}
	r.done = true
	var errs []error
	if r.video != nil {
		errs = append(errs, r.video.Close())
		r.video = nil
	}
	if r.opts.ChartPath != "" && r.pop.Len() >= 2 {
		errs = append(errs, r.pop.WriteFile(r.opts.ChartPath))
	}
	return errors.Join(errs...)
}

// Run observes events until the channel is closed. The first error stops
// recording but the channel is still drained.
func (r *Recorder) Run(events <-chan gol.Event) error {
	var err error
	for e := range events {
		if err == nil {
			err = r.Observe(e)
		}
	}
	if err == nil {
		err = r.finish()
	}
	return err
}

// World returns the latest reconstructed world and its turn.
func (r *Recorder) World() *stubs.CellsContainer { return r.cells }
