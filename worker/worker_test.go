package main

import (
	"context"
	"net"
	"net/rpc"
	"testing"
	"time"

	"uk.ac.bris.cs/halolife/stubs"
)

// Broker answers like the real one for a group of two where the other
// worker joined first.
type Broker struct{}

func (Broker) WorkerConnect(req stubs.ConnectRequest, res *stubs.ConnectResponse) error {
	res.Id, res.Size = 1, 2
	return nil
}

func (Broker) Peers(req stubs.PeersRequest, res *stubs.PeersResponse) error {
	res.Addrs = []stubs.IPAddress{"10.0.0.1:7000", "10.0.0.2:7001"}
	return nil
}

func TestJoin(t *testing.T) {
	server := rpc.NewServer()
	if err := server.Register(Broker{}); err != nil {
		t.Fatal(err)
	}
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	go server.Accept(l)

	client, err := rpc.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	id, peers, err := join(ctx, client, "10.0.0.2:7001")
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 || len(peers) != 2 || peers[0] != "10.0.0.1:7000" {
		t.Fatalf("id %d, peers %v", id, peers)
	}
}

func TestAdvertisedAddress(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	addr := advertisedAddress("192.168.1.5", l)
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "192.168.1.5" || port == "0" {
		t.Fatalf("advertised %q", addr)
	}
}
