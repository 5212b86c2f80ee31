package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/rpc"
	"strconv"

	"uk.ac.bris.cs/halolife/gol"
	"uk.ac.bris.cs/halolife/stubs"
)

// advertisedAddress is the address peers dial to reach listener: the host
// given on the command line and the port actually bound.
func advertisedAddress(host string, listener net.Listener) string {
	port := listener.Addr().(*net.TCPAddr).Port
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// join registers with the broker and waits for the rest of the group.
func join(ctx context.Context, broker *rpc.Client, addr string) (id int, peers []string, err error) {
	res := new(stubs.ConnectResponse)
	if err = call(ctx, broker, stubs.WorkerConnect, stubs.ConnectRequest{IP: stubs.IPAddress(addr)}, res); err != nil {
		return -1, nil, fmt.Errorf("connect to broker: %w", err)
	}
	peersRes := new(stubs.PeersResponse)
	if err = call(ctx, broker, stubs.Peers, stubs.PeersRequest{Id: res.Id}, peersRes); err != nil {
		return res.Id, nil, fmt.Errorf("peer list: %w", err)
	}
	if len(peersRes.Addrs) != res.Size {
		return res.Id, nil, fmt.Errorf("broker sent %d peers for a group of %d", len(peersRes.Addrs), res.Size)
	}
	peers = make([]string, len(peersRes.Addrs))
	for i, a := range peersRes.Addrs {
		peers[i] = string(a)
	}
	return res.Id, peers, nil
}

func call(ctx context.Context, client *rpc.Client, method string, req, res interface{}) error {
	c := client.Go(method, req, res, make(chan *rpc.Call, 1))
	select {
	case <-c.Done:
		return c.Error
	case <-ctx.Done():
		return ctx.Err()
	}
}

// report prints the progress of a run until the event stream ends.
func report(events <-chan gol.Event, logger *log.Logger, turns int) {
	for e := range events {
		switch e := e.(type) {
		case gol.TurnComplete:
			fmt.Printf("Step %d/%d\n", e.CompletedTurns, turns)
		case gol.ImageOutputComplete, gol.AliveCellsCount, gol.StateChange:
			logger.Printf("turn %d: %v", e.GetCompletedTurns(), e)
		case gol.FinalTurnComplete:
			logger.Printf("finished after %d turns with %d alive cells", e.CompletedTurns, len(e.Alive))
		}
	}
}
