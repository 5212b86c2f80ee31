package main

import (
	"errors"
	"testing"

	"uk.ac.bris.cs/halolife/grid"
)

func TestGetDiff(t *testing.T) {
	a, _ := grid.Parse("#..", ".#.")
	b, _ := grid.Parse("#.#", "...")
	diff, count, err := getDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := grid.Parse("..#", ".#.")
	if count != 2 || !diff.Equal(want) {
		t.Fatalf("count %d, diff\n%s", count, diff)
	}
	if _, _, err := getDiff(a, grid.New(3, 2)); !errors.Is(err, grid.ErrShape) {
		t.Fatalf("err = %v", err)
	}
}
