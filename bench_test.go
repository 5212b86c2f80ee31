package main

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"uk.ac.bris.cs/halolife/evolve"
	"uk.ac.bris.cs/halolife/gol"
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/pgm"
)

func BenchmarkLocal(b *testing.B) {
	turns := 20
	workerConfs := []int{1, 2, 4}
	threadConfs := []int{1, 2, 4, 8}
	imageConfs := []int{64, 256, 512}
	policies := []evolve.Policy{evolve.Synchronous, evolve.TwoPhase}

	for _, imageSize := range imageConfs {
		input := filepath.Join(b.TempDir(), fmt.Sprintf("%dx%d", imageSize, imageSize))
		world := grid.Random(imageSize, imageSize, rand.New(rand.NewSource(1)))
		if err := pgm.Write(pgm.AddExt(input), world); err != nil {
			b.Fatal(err)
		}
		for _, policy := range policies {
			for _, workers := range workerConfs {
				for _, threads := range threadConfs {
					p := gol.Params{
						Action:      gol.ActionRun,
						Policy:      policy,
						Turns:       turns,
						Threads:     threads,
						InputName:   input,
						SnapshotDir: b.TempDir(),
					}
					name := fmt.Sprintf("size=%dx%d_policy=%v_workers=%d_threads=%d_turns=%d", imageSize, imageSize, policy, workers, threads, turns)
					b.Run(name, func(b *testing.B) {
						benchmark(b, p, workers)
					})
				}
			}
		}
	}
}

func benchmark(b *testing.B, p gol.Params, workers int) {
	for i := 0; i < b.N; i++ {
		events := make(chan gol.Event)
		errs := make(chan error, 1)
		go func() { errs <- gol.RunLocal(context.Background(), p, workers, events) }()
		for range events {
		}
		if err := <-errs; err != nil {
			b.Fatal(err)
		}
	}
}

func TestFanOut(t *testing.T) {
	events := make(chan gol.Event, 2)
	a, c := make(chan gol.Event, 2), make(chan gol.Event, 2)
	events <- gol.TurnComplete{CompletedTurns: 1}
	events <- gol.TurnComplete{CompletedTurns: 2}
	close(events)
	fanOut(events, []chan gol.Event{a, c})
	for _, ch := range []chan gol.Event{a, c} {
		n := 0
		for e := range ch {
			n++
			if e.GetCompletedTurns() != n {
				t.Fatalf("event %d out of order: %v", n, e)
			}
		}
		if n != 2 {
			t.Fatalf("%d events forwarded", n)
		}
	}
}
