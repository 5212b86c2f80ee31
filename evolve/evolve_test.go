package evolve

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/halo"
)

func mustParse(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func step(t *testing.T, policy Policy, threads int, g *grid.Grid, turns int) *grid.Grid {
	t.Helper()
	s := NewStepper(policy, NewEngine(threads), halo.Torus{}, g)
	for i := 0; i < turns; i++ {
		if err := s.Step(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	return s.Band()
}

var blinker = []string{
	".....",
	".....",
	".###.",
	".....",
	".....",
}

func TestBlinkerPerPolicy(t *testing.T) {
	tests := []struct {
		policy Policy
		want   []string
	}{
		{Synchronous, []string{
			".....",
			"..#..",
			"..#..",
			"..#..",
			".....",
		}},
		{TwoPhase, []string{
			".....",
			".....",
			"..#..",
			".....",
			".....",
		}},
		{Ordered, []string{
			".....",
			"..##.",
			".#.#.",
			".....",
			".....",
		}},
	}
	for _, test := range tests {
		t.Run(test.policy.String(), func(t *testing.T) {
			got := step(t, test.policy, 2, mustParse(t, blinker...), 1)
			if want := mustParse(t, test.want...); !got.Equal(want) {
				t.Fatalf("got\n%swant\n%s", got, want)
			}
		})
	}
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, cell := range []byte{grid.Alive, grid.Dead} {
			got := Rule(cell, n)
			var want byte
			switch {
			case n < 2 || n > 3:
				want = grid.Dead
			case n == 3:
				want = grid.Alive
			default:
				want = cell
			}
			if got != want {
				t.Errorf("Rule(%d, %d) = %d, want %d", cell, n, got, want)
			}
		}
	}
}

func TestNeighborCountWraps(t *testing.T) {
	h := grid.HaloFrom(mustParse(t,
		"#..#",
		"....",
		"#..#",
	))
	halo.Periodic(h)
	// Padded (1, 1) is the top-left corner: its neighbours wrap to the other
	// three corners.
	if n := NeighborCount(h, 1, 1); n != 3 {
		t.Fatalf("corner neighbours = %d, want 3", n)
	}
	if n := NeighborCount(h, 2, 2); n != 2 {
		t.Fatalf("middle neighbours = %d, want 2", n)
	}
}

func TestLoneCellDies(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(1, 1, grid.Alive)
	if got := step(t, Synchronous, 1, g, 1); got.CountAlive() != 0 {
		t.Fatalf("lone cell survived:\n%s", got)
	}
}

func TestBlockIsStill(t *testing.T) {
	block := mustParse(t,
		"......",
		".##...",
		".##...",
		"......",
		"......",
	)
	for _, policy := range []Policy{Synchronous, TwoPhase, Ordered} {
		if got := step(t, policy, 3, block, 10); !got.Equal(block) {
			t.Errorf("%v: block changed:\n%s", policy, got)
		}
	}
}

func TestThreadCountDoesNotMatter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := grid.New(23, 17)
	for i := range g.Bytes() {
		if rng.Intn(3) == 0 {
			g.Bytes()[i] = grid.Alive
		}
	}
	for _, policy := range []Policy{Synchronous, TwoPhase} {
		want := step(t, policy, 1, g, 5)
		for threads := 2; threads <= 30; threads += 7 {
			t.Run(fmt.Sprintf("%v_%d", policy, threads), func(t *testing.T) {
				if got := step(t, policy, threads, g, 5); !got.Equal(want) {
					t.Fatalf("differs from single thread")
				}
			})
		}
	}
}

func TestRanges(t *testing.T) {
	got := ranges(10, 3)
	want := [][2]int{{1, 4}, {4, 7}, {7, 11}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("ranges(10, 3) = %v, want %v", got, want)
	}
	if got := ranges(2, 8); len(got) != 2 {
		t.Fatalf("more ranges than rows: %v", got)
	}
}

func TestStepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStepper(Synchronous, NewEngine(2), halo.Torus{}, grid.New(4, 4))
	if err := s.Step(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{"0": Ordered, "1": Synchronous, "2": TwoPhase, "two-phase": TwoPhase} {
		if got, err := ParsePolicy(in); err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePolicy("3"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("err = %v", err)
	}
}

func TestDistributed(t *testing.T) {
	if Ordered.Distributed() || !Synchronous.Distributed() || !TwoPhase.Distributed() {
		t.Fatal("only the ordered policy runs on a single worker")
	}
}
