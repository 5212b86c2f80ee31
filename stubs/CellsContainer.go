package stubs

import (
	"sync"

	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/util"
)

// CellsContainer holds the latest world seen by an observer together with
// the turn it belongs to.
type CellsContainer struct {
	Mu    *sync.Mutex
	World *grid.Grid
	Turn  int
}

func NewCellsContainer(height, width int) *CellsContainer {
	return &CellsContainer{Mu: new(sync.Mutex), World: grid.New(height, width)}
}

// Get returns a copy of the world and its turn.
func (c *CellsContainer) Get() (*grid.Grid, int) {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	return c.World.Clone(), c.Turn
}

// Flip applies flipped cells and records the turn.
func (c *CellsContainer) Flip(cells []util.Cell, turn int) {
	c.Mu.Lock()
	ApplyFlips(c.World, cells)
	c.Turn = turn
	c.Mu.Unlock()
}

func (c *CellsContainer) GetAliveCount() (int, int) {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	return c.World.CountAlive(), c.Turn
}
