package gol

import (
	"math/rand"
	"time"

	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/pgm"
)

// Initialise writes a random GridSize x GridSize world to the input image
// and returns it.
func Initialise(p Params) (*grid.Grid, error) {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := grid.Random(p.GridSize, p.GridSize, rand.New(rand.NewSource(seed)))
	if err := pgm.Write(p.InputPath(), world); err != nil {
		return nil, err
	}
	return world, nil
}
