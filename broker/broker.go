package main

import (
	"flag"
	"log"
	"net"
	"net/rpc"

	"uk.ac.bris.cs/halolife/stubs"
)

// connects worker to broker
func (b *Broker) WorkerConnect(req stubs.ConnectRequest, res *stubs.ConnectResponse) (err error) {
	id, err := b.addWorker(req.IP)
	if err != nil {
		log.Printf("[Broker] rejected %s: %v", req.IP, err)
		return
	}
	res.Id = id
	res.Size = b.Size
	log.Printf("[Broker] worker #%d connected from %s (%d/%d)", id, req.IP, id+1, b.Size)
	return
}

// replies once all workers have connected
func (b *Broker) Peers(req stubs.PeersRequest, res *stubs.PeersResponse) (err error) {
	res.Addrs = b.peerAddresses()
	return
}

func (b *Broker) WorkerDisconnect(req stubs.RemoveRequest, res *stubs.NilResponse) (err error) {
	if err = b.removeWorker(req.Id); err != nil {
		return
	}
	log.Printf("[Broker] removed worker #%d", req.Id)
	return
}

func main() {
	pAddr := flag.String("port", "9000", "Port to listen on")
	np := flag.Int("np", 2, "Number of workers in the group")
	flag.Parse()
	if *np < 1 {
		log.Fatalf("[Broker] need at least one worker, got %d", *np)
	}

	broker := NewBroker(*np)
	if err := rpc.Register(broker); err != nil {
		log.Fatal(err)
	}
	listener, err := net.Listen("tcp", ":"+*pAddr)
	if err != nil {
		log.Fatalf("[Broker] could not listen on port %s: %v", *pAddr, err)
	}
	defer listener.Close()
	log.Printf("[Broker] waiting for %d workers on port %s", *np, *pAddr)
	go rpc.Accept(listener)
	<-broker.done()
	log.Printf("[Broker] all workers finished")
}
