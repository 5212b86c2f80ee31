package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"

	"uk.ac.bris.cs/halolife/gol"
	"uk.ac.bris.cs/halolife/pgm"
	"uk.ac.bris.cs/halolife/record"
	"uk.ac.bris.cs/halolife/sdl"
)

// main runs a whole worker group inside this process.
func main() {
	np := flag.Int("np", 4, "Number of workers")
	noVis := flag.Bool("noVis", false, "Disables the SDL window")
	video := flag.String("video", "", "Record the snapshots to this MJPEG .avi file")
	chart := flag.String("chart", "", "Plot the population of the snapshots to this PNG file")
	scale := flag.Int("scale", 1, "Pixels per cell in the video")
	p, err := gol.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if p.Action == gol.ActionInit {
		if err := gol.RunLocal(ctx, p, *np, nil); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Initial world written to", p.InputPath())
		return
	}

	rows, cols, err := pgm.ReadDimensions(p.InputPath())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Running %s on %dx%d with %d workers of %d threads\n", p.Policy, rows, cols, *np, p.Threads)

	events := make(chan gol.Event, 1000)
	var consumers []chan gol.Event
	var wg sync.WaitGroup
	consume := func(f func(<-chan gol.Event)) {
		ch := make(chan gol.Event, 1000)
		consumers = append(consumers, ch)
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(ch)
		}()
	}

	consume(func(ch <-chan gol.Event) {
		for e := range ch {
			if e, ok := e.(gol.TurnComplete); ok {
				fmt.Printf("Step %d/%d\n", e.CompletedTurns, p.Turns)
			}
		}
	})
	if *video != "" || *chart != "" {
		recorder, err := record.NewRecorder(rows, cols, record.Options{VideoPath: *video, ChartPath: *chart, Scale: *scale})
		if err != nil {
			log.Fatal(err)
		}
		consume(func(ch <-chan gol.Event) {
			if err := recorder.Run(ch); err != nil {
				log.Printf("recording failed: %v", err)
			}
		})
	}
	var view chan gol.Event
	if !*noVis {
		view = make(chan gol.Event, 1000)
		consumers = append(consumers, view)
	}

	go fanOut(events, consumers)
	runErr := make(chan error, 1)
	go func() { runErr <- gol.RunLocal(ctx, p, *np, events) }()

	// The window has to live on the main goroutine.
	if view != nil {
		if err := sdl.Run(view, rows, cols); errors.Is(err, sdl.ErrUnavailable) {
			log.Println(err)
		} else if err != nil {
			log.Printf("viewer: %v", err)
		}
	}
	err = <-runErr
	wg.Wait()
	if err != nil {
		log.Fatal(err)
	}
}

// fanOut copies every event to each consumer and closes them when events is
// closed.
func fanOut(events <-chan gol.Event, consumers []chan gol.Event) {
	for e := range events {
		for _, c := range consumers {
			c <- e
		}
	}
	for _, c := range consumers {
		close(c)
	}
}
