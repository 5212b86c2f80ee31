package comm

import (
	"context"
	"fmt"
)

// Request is an in-flight Isend or Irecv.
type Request struct {
	done chan struct{}
	err  error
}

func start(f func() error) *Request {
	req := &Request{done: make(chan struct{})}
	go func() {
		req.err = f()
		close(req.done)
	}()
	return req
}

// Wait blocks until the request completes and returns its error.
func (r *Request) Wait() error {
	<-r.done
	return r.err
}

// Isend starts sending data to dst. data is copied before Isend returns.
func Isend(ctx context.Context, c Comm, dst, tag int, data []byte) *Request {
	msg := make([]byte, len(data))
	copy(msg, data)
	return start(func() error {
		return c.Send(ctx, dst, tag, msg)
	})
}

// Irecv starts receiving from src into buf. The message must be exactly
// len(buf) bytes; buf must not be touched until the request completes.
func Irecv(ctx context.Context, c Comm, src, tag int, buf []byte) *Request {
	return start(func() error {
		msg, err := c.Recv(ctx, src, tag)
		if err != nil {
			return err
		}
		if len(msg) != len(buf) {
			return fmt.Errorf("%w: got %d bytes from rank %d tag %d, want %d", ErrSize, len(msg), src, tag, len(buf))
		}
		copy(buf, msg)
		return nil
	})
}

// RequestSetSize is the capacity of a RequestSet: the two sends and two
// receives of one halo exchange.
const RequestSetSize = 4

// RequestSet tracks a fixed number of outstanding requests so that all of
// them can be awaited together.
type RequestSet struct {
	reqs [RequestSetSize]*Request
	n    int
}

func (s *RequestSet) Add(req *Request) error {
	if s.n == len(s.reqs) {
		return ErrSetFull
	}
	s.reqs[s.n] = req
	s.n++
	return nil
}

func (s *RequestSet) Len() int { return s.n }

// WaitAll waits for every request in the set, even after one has failed,
// then empties the set. The first error encountered is returned.
func (s *RequestSet) WaitAll() error {
	var first error
	for i := 0; i < s.n; i++ {
		if err := s.reqs[i].Wait(); err != nil && first == nil {
			first = err
		}
		s.reqs[i] = nil
	}
	s.n = 0
	return first
}
