package stubs

import (
	"testing"

	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/util"
)

func TestAliveCellsRoundTrip(t *testing.T) {
	g, _ := grid.Parse(
		"#...",
		"..#.",
		"...#",
	)
	cells := GetAliveCells(g)
	want := []util.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 2}}
	if len(cells) != len(want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cells = %v, want %v", cells, want)
		}
	}
	if !ConstructWorld(cells, 3, 4).Equal(g) {
		t.Fatal("ConstructWorld did not rebuild the grid")
	}
}

func TestFlipsRebuildNextGrid(t *testing.T) {
	before, _ := grid.Parse("##.", "...")
	after, _ := grid.Parse(".#.", "..#")
	flips := GetFlippedCells(before, after)
	if len(flips) != 2 {
		t.Fatalf("flips = %v", flips)
	}
	world := before.Clone()
	ApplyFlips(world, flips)
	if !world.Equal(after) {
		t.Fatalf("after flips:\n%s", world)
	}
}

func TestCellsContainer(t *testing.T) {
	c := NewCellsContainer(2, 2)
	c.Flip([]util.Cell{{X: 1, Y: 0}}, 4)
	alive, turn := c.GetAliveCount()
	if alive != 1 || turn != 4 {
		t.Fatalf("GetAliveCount = %d, %d", alive, turn)
	}
	world, _ := c.Get()
	world.Set(0, 0, grid.Alive)
	if n, _ := c.GetAliveCount(); n != 1 {
		t.Fatal("Get did not return a copy")
	}
}

func TestRemoveSliceElement(t *testing.T) {
	s := RemoveSliceElement([]int{4, 5, 6}, 5)
	if len(s) != 2 || s[0] != 4 || s[1] != 6 {
		t.Fatalf("got %v", s)
	}
	if got := RemoveSliceElement([]int{1}, 9); len(got) != 1 {
		t.Fatalf("missing value removed something: %v", got)
	}
}
