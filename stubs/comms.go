package stubs

import (
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/util"
)

/*
 * Conversions between grids and the cell lists that travel in events.
 */

// GetAliveCells lists the alive cells of a grid, X being the column.
func GetAliveCells(g *grid.Grid) []util.Cell {
	cells := []util.Cell{}
	for y := 0; y < g.Rows(); y++ {
		for x, cell := range g.Row(y) {
			if cell == grid.Alive {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// GetFlippedCells lists the cells whose state differs between two grids of
// the same shape.
func GetFlippedCells(before, after *grid.Grid) []util.Cell {
	cells := []util.Cell{}
	for y := 0; y < after.Rows(); y++ {
		prev := before.Row(y)
		for x, cell := range after.Row(y) {
			if cell != prev[x] {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// ConstructWorld builds a grid where exactly the given cells are alive.
func ConstructWorld(cells []util.Cell, height, width int) *grid.Grid {
	world := grid.New(height, width)
	for _, cell := range cells {
		world.Set(cell.Y, cell.X, grid.Alive)
	}
	return world
}

// ApplyFlips toggles every listed cell between alive and dead.
func ApplyFlips(world *grid.Grid, cells []util.Cell) {
	for _, cell := range cells {
		world.Set(cell.Y, cell.X, world.At(cell.Y, cell.X)^0xFF)
	}
}

func RemoveSliceElement(s []int, val int) []int {
	i := FindValue(s, val)
	if i < 0 {
		return s
	}
	return append(s[:i], s[i+1:]...)
}

func FindValue(arr []int, element int) int {
	for i, val := range arr {
		if val == element {
			return i
		}
	}
	return -1
}
