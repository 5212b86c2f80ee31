package partition

import (
	"errors"
	"fmt"
	"testing"
)

func TestLayoutCoversRows(t *testing.T) {
	for rows := 1; rows <= 40; rows++ {
		for size := 1; size <= rows && size <= 9; size++ {
			parts, err := Layout(rows, 7, size)
			if err != nil {
				t.Fatalf("Layout(%d, 7, %d): %v", rows, size, err)
			}
			sum, next := 0, 0
			for _, p := range parts {
				if p.RowOffset != next {
					t.Fatalf("rows=%d size=%d rank=%d: offset %d, want %d", rows, size, p.Rank, p.RowOffset, next)
				}
				if p.Rank != size-1 && p.LocalRows != rows/size {
					t.Fatalf("rows=%d size=%d rank=%d: %d rows, only the last rank may differ", rows, size, p.Rank, p.LocalRows)
				}
				if p.LocalCols != 7 {
					t.Fatalf("columns were split: %d", p.LocalCols)
				}
				sum += p.LocalRows
				next += p.LocalRows
			}
			if sum != rows {
				t.Fatalf("rows=%d size=%d: bands cover %d rows", rows, size, sum)
			}
		}
	}
}

func TestRemainderGoesToLastRank(t *testing.T) {
	parts, err := Layout(10, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 3, 4}
	for i, p := range parts {
		if p.LocalRows != want[i] {
			t.Errorf("rank %d: %d rows, want %d", i, p.LocalRows, want[i])
		}
	}
	if start, end := parts[2].Span(); start != 24 || end != 40 {
		t.Errorf("last span = [%d, %d), want [24, 40)", start, end)
	}
}

func TestRingNeighbours(t *testing.T) {
	tests := []struct {
		size, rank   int
		upper, lower int
	}{
		{1, 0, 0, 0},
		{2, 0, 1, 1},
		{2, 1, 0, 0},
		{4, 0, 3, 1},
		{4, 2, 1, 3},
		{4, 3, 2, 0},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", test.rank, test.size), func(t *testing.T) {
			p, err := New(16, 16, test.size, test.rank)
			if err != nil {
				t.Fatal(err)
			}
			if p.Upper != test.upper || p.Lower != test.lower {
				t.Fatalf("neighbours = (%d, %d), want (%d, %d)", p.Upper, p.Lower, test.upper, test.lower)
			}
		})
	}
}

func TestDegenerate(t *testing.T) {
	tests := []struct{ rows, cols, size, rank int }{
		{3, 3, 4, 0},
		{0, 3, 1, 0},
		{3, 0, 1, 0},
		{3, 3, 0, 0},
		{3, 3, 2, 2},
	}
	for _, test := range tests {
		if _, err := New(test.rows, test.cols, test.size, test.rank); !errors.Is(err, ErrDegenerate) {
			t.Errorf("New(%v) err = %v, want ErrDegenerate", test, err)
		}
	}
}
