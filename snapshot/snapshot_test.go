package snapshot

import (
	"context"
	"math/rand"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"uk.ac.bris.cs/halolife/comm"
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/partition"
	"uk.ac.bris.cs/halolife/pgm"
)

func TestDue(t *testing.T) {
	tests := []struct {
		step, stride, steps int
		want                bool
	}{
		{0, 0, 10, false},
		{5, 0, 10, false},
		{10, 0, 10, true},
		{0, 3, 10, true},
		{3, 3, 10, true},
		{4, 3, 10, false},
		{10, 3, 10, true},
	}
	for _, test := range tests {
		if got := Due(test.step, test.stride, test.steps); got != test.want {
			t.Errorf("Due(%d, %d, %d) = %v", test.step, test.stride, test.steps, got)
		}
	}
}

func TestName(t *testing.T) {
	if got := Name(42); got != "snapshot00042.pgm" {
		t.Fatalf("Name(42) = %q", got)
	}
}

func TestDiskWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	g := grid.Random(4, 5, rand.New(rand.NewSource(3)))
	path, err := DiskWriter{Dir: dir}.Write(g, 7)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "snapshot00007.pgm") {
		t.Fatalf("path = %q", path)
	}
	got, err := pgm.Read(path, 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatal("snapshot content differs")
	}
}

func TestGather(t *testing.T) {
	const rows, cols, size = 10, 3, 3
	global := grid.Random(rows, cols, rand.New(rand.NewSource(4)))
	parts, err := partition.Layout(rows, cols, size)
	if err != nil {
		t.Fatal(err)
	}
	group := comm.NewLocal(size)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got *grid.Grid
	var wg sync.WaitGroup
	for _, p := range parts {
		wg.Add(1)
		go func(p partition.Partition) {
			defer wg.Done()
			start, end := p.Span()
			g, err := NewCollector(group[p.Rank], rows, cols).Gather(ctx, global.Bytes()[start:end])
			if err != nil {
				t.Error(err)
				return
			}
			if p.Rank == 0 {
				got = g
			} else if g != nil {
				t.Errorf("rank %d got a grid", p.Rank)
			}
		}(p)
	}
	wg.Wait()
	if !global.Equal(got) {
		t.Fatalf("gathered\n%swant\n%s", got, global)
	}
}
