package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/rpc"
	"os"
	"os/signal"
	"sync"

	"uk.ac.bris.cs/halolife/comm"
	"uk.ac.bris.cs/halolife/gol"
	"uk.ac.bris.cs/halolife/stubs"
)

func main() {
	bAddr := flag.String("brokerIP", "127.0.0.1:9000", "IP address of broker")
	host := flag.String("ip", "127.0.0.1", "Address peers use to reach this worker")
	pAddr := flag.String("port", "0", "Port to listen on (0 picks a free one)")
	p, err := gol.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	listener, err := net.Listen("tcp", ":"+*pAddr)
	if err != nil {
		log.Fatalf("[Worker] could not listen on port %s: %v", *pAddr, err)
	}
	broker, err := rpc.Dial("tcp", *bAddr)
	if err != nil {
		log.Fatalf("[Worker] could not reach broker at %s: %v", *bAddr, err)
	}
	defer broker.Close()

	id, peers, err := join(ctx, broker, advertisedAddress(*host, listener))
	if err != nil {
		log.Fatalf("[Worker] %v", err)
	}
	logger := log.New(os.Stderr, fmt.Sprintf("[Worker %d] ", id), log.LstdFlags)
	logger.Printf("joined a group of %d, %s run with the %v policy", len(peers), p.Action, p.Policy)

	c, err := comm.NewRPC(id, peers, listener)
	if err != nil {
		logger.Fatal(err)
	}

	var events chan gol.Event
	var wg sync.WaitGroup
	if id == 0 {
		events = make(chan gol.Event)
		wg.Add(1)
		go func() {
			defer wg.Done()
			report(events, logger, p.Turns)
		}()
	}
	runErr := gol.Run(ctx, p, c, events)
	wg.Wait()

	c.Close()
	if err := broker.Call(stubs.WorkerDisconnect, stubs.RemoveRequest{Id: id}, new(stubs.NilResponse)); err != nil {
		logger.Println(err)
	}
	if runErr != nil {
		logger.Fatal(runErr)
	}
	logger.Println("done")
}
