package channels

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Take once the mailbox has been closed and the
// requested queue is empty.
var ErrClosed = errors.New("channels: mailbox closed")

// Key addresses one FIFO queue of a mailbox: messages from one sender with
// one tag.
type Key struct {
	Src int
	Tag int
}

// Mailbox is an unbounded set of FIFO queues guarded by a condition variable.
// Put never blocks; Take blocks until a message for its key arrives.
type Mailbox struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queues map[Key][][]byte
	closed bool
}

func NewMailbox() *Mailbox {
	m := &Mailbox{queues: make(map[Key][][]byte)}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Put appends value to the queue for key. The mailbox takes ownership of the
// slice. Puts after Close are dropped.
func (m *Mailbox) Put(key Key, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.queues[key] = append(m.queues[key], value)
	m.cond.Broadcast()
}

// Take removes the oldest message for key, waiting until one is available,
// the context is done or the mailbox is closed.
func (m *Mailbox) Take(ctx context.Context, key Key) ([]byte, error) {
	stop := context.AfterFunc(ctx, func() {
		m.mu.Lock()
		m.cond.Broadcast()
		m.mu.Unlock()
	})
	defer stop()

	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.queues[key]) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m.closed {
			return nil, ErrClosed
		}
		m.cond.Wait()
	}
	return m.pop(key), nil
}

// must hold m.mu
func (m *Mailbox) pop(key Key) []byte {
	q := m.queues[key]
	value := q[0]
	q[0] = nil
	if len(q) == 1 {
		delete(m.queues, key)
	} else {
		m.queues[key] = q[1:]
	}
	return value
}

// Close wakes every waiter. Queued messages can still be taken.
func (m *Mailbox) Close() {
	m.mu.Lock()
	m.closed = true
	m.cond.Broadcast()
	m.mu.Unlock()
}
