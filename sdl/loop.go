// Package sdl shows the world of a run in a window as its snapshots arrive.
// The window needs cgo and SDL2 and is only built with the sdl tag; without
// it Run reports ErrUnavailable.
package sdl

import (
	"errors"

	"uk.ac.bris.cs/halolife/gol"
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/stubs"
)

var ErrUnavailable = errors.New("sdl: viewer not built in (use -tags sdl)")

// screen is what the event loop draws on.
type screen interface {
	Draw(world *grid.Grid) error
	// Quit polls pending window events and reports whether the user closed
	// the window.
	Quit() bool
	Destroy()
}

// Run opens a window and redraws it whenever a new generation is known.
// The window closes when events is closed; closing it earlier just stops
// drawing, the events are still drained.
func Run(events <-chan gol.Event, rows, cols int) error {
	s, err := newScreen(rows, cols)
	if err != nil {
		for range events {
		}
		return err
	}
	defer s.Destroy()
	return loop(s, events, stubs.NewCellsContainer(rows, cols))
}

func loop(s screen, events <-chan gol.Event, cells *stubs.CellsContainer) error {
	open := true
	for e := range events {
		if open && s.Quit() {
			open = false
		}
		flipped, ok := e.(gol.CellsFlipped)
		if !ok {
			continue
		}
		cells.Flip(flipped.Cells, flipped.CompletedTurns)
		if !open {
			continue
		}
		world, _ := cells.Get()
		if err := s.Draw(world); err != nil {
			for range events {
			}
			return err
		}
	}
	return nil
}

// fillPixels writes world as 4-byte pixels, alive black and dead white.
func fillPixels(world *grid.Grid, pixels []byte) {
	for i, cell := range world.Bytes() {
		v := byte(0xFF)
		if cell == grid.Alive {
			v = 0
		}
		p := pixels[4*i : 4*i+4]
		p[0], p[1], p[2], p[3] = v, v, v, 0xFF
	}
}
