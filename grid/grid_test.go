package grid

import (
	"errors"
	"testing"
)

func TestNewIsDead(t *testing.T) {
	g := New(3, 4)
	if g.CountAlive() != 0 {
		t.Fatalf("fresh grid has %d alive cells", g.CountAlive())
	}
	for _, v := range g.Bytes() {
		if v != Dead {
			t.Fatalf("fresh cell = %d, want %d", v, Dead)
		}
	}
}

func TestParseAndString(t *testing.T) {
	g, err := Parse(
		".#.",
		"##.",
	)
	if err != nil {
		t.Fatal(err)
	}
	if g.At(0, 1) != Alive || g.At(0, 0) != Dead || g.At(1, 0) != Alive {
		t.Fatalf("unexpected cells:\n%s", g)
	}
	if got, want := g.String(), ".#.\n##.\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if _, err := Parse("..", "..."); !errors.Is(err, ErrShape) {
		t.Fatalf("ragged parse err = %v, want ErrShape", err)
	}
}

func TestFromBytesShape(t *testing.T) {
	if _, err := FromBytes(2, 2, make([]byte, 3)); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	g, err := FromBytes(1, 3, []byte{Alive, Dead, Alive})
	if err != nil {
		t.Fatal(err)
	}
	if g.CountAlive() != 2 {
		t.Fatalf("CountAlive = %d", g.CountAlive())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(2, 2).At(2, 0)
}

func TestHaloLoadInterior(t *testing.T) {
	g, _ := Parse(
		"#..",
		".#.",
		"..#",
		"##.",
	)
	h := HaloFrom(g)
	if h.Padded().Rows() != 6 || h.Padded().Cols() != 5 {
		t.Fatalf("padded shape %dx%d", h.Padded().Rows(), h.Padded().Cols())
	}
	if h.At(1, 1) != Alive || h.At(4, 2) != Alive || h.At(0, 0) != Dead {
		t.Fatal("interior not placed at padded offset")
	}
	if !h.Interior().Equal(g) {
		t.Fatalf("interior round trip:\n%s", h.Interior())
	}
	if got := len(h.InteriorRow(2)); got != 3 {
		t.Fatalf("InteriorRow len = %d", got)
	}
}
