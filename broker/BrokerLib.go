package main

import (
	"fmt"
	"sync"

	"uk.ac.bris.cs/halolife/stubs"
)

type WorkerInfo struct {
	id        int
	ipAddress stubs.IPAddress
}

// Broker hands out ranks to workers in the order they connect and tells
// every worker where its peers listen once the group is complete.
type Broker struct {
	Mu        *sync.Mutex
	full      *sync.Cond
	Size      int
	Workers   map[int]*WorkerInfo // Id : worker
	NextID    int
	workerIds []int // connected and not yet disconnected
	exit      chan bool
	exitOnce  sync.Once
}

// initialises Broker struct for a group of size workers
func NewBroker(size int) *Broker {
	b := &Broker{
		Mu:      new(sync.Mutex),
		Size:    size,
		Workers: map[int]*WorkerInfo{},
		exit:    make(chan bool),
	}
	b.full = sync.NewCond(b.Mu)
	return b
}

// registers a worker and returns its rank
func (b *Broker) addWorker(ip stubs.IPAddress) (int, error) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	if b.NextID == b.Size {
		return -1, fmt.Errorf("broker > group of %d workers is already full", b.Size)
	}
	id := b.NextID
	b.Workers[id] = &WorkerInfo{id: id, ipAddress: ip}
	b.workerIds = append(b.workerIds, id)
	b.NextID++
	if b.NextID == b.Size {
		b.full.Broadcast()
	}
	return id, nil
}

// blocks until every worker has connected and lists their addresses by rank
func (b *Broker) peerAddresses() []stubs.IPAddress {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for b.NextID < b.Size {
		b.full.Wait()
	}
	addrs := make([]stubs.IPAddress, b.Size)
	for id, w := range b.Workers {
		addrs[id] = w.ipAddress
	}
	return addrs
}

// removes a worker; the broker exits once the whole group has come and gone
func (b *Broker) removeWorker(id int) error {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	if stubs.FindValue(b.workerIds, id) < 0 {
		return fmt.Errorf("broker > worker #%d is not connected", id)
	}
	b.workerIds = stubs.RemoveSliceElement(b.workerIds, id)
	if b.NextID == b.Size && len(b.workerIds) == 0 {
		b.exitOnce.Do(func() { close(b.exit) })
	}
	return nil
}

// done is closed when the broker has nothing left to do.
func (b *Broker) done() <-chan bool { return b.exit }
