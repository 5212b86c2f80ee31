// Package comm is the message-passing runtime shared by the workers: ranked
// point-to-point send and receive, non-blocking requests, and a barrier.
//
// Two transports implement Comm. Local connects goroutines of one process
// through in-memory mailboxes; RPC connects processes over net/rpc.
package comm

import (
	"context"
	"errors"
)

var (
	ErrRankOutOfRange = errors.New("comm: rank out of range")
	ErrClosed         = errors.New("comm: closed")
	ErrSize           = errors.New("comm: message size mismatch")
	ErrSetFull        = errors.New("comm: request set full")
)

// Comm is one rank's view of a fixed group of Size ranks.
//
// Messages between a pair of ranks with the same tag are received in the
// order they were sent, as long as a sender has at most one Send in flight
// per destination and tag.
type Comm interface {
	Rank() int
	Size() int
	// Send delivers a copy of data to dst under tag.
	Send(ctx context.Context, dst, tag int, data []byte) error
	// Recv blocks for the next message from src under tag.
	Recv(ctx context.Context, src, tag int) ([]byte, error)
	Close() error
}

func checkRank(rank, size int) error {
	if rank < 0 || rank >= size {
		return ErrRankOutOfRange
	}
	return nil
}
