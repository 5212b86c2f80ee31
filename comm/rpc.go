package comm

import (
	"context"
	"fmt"
	"net"
	"net/rpc"
	"sync"

	"uk.ac.bris.cs/halolife/channels"
	"uk.ac.bris.cs/halolife/stubs"
)

// Mailbox is the RPC service through which peers deliver messages.
type Mailbox struct {
	box *channels.Mailbox
}

func (m *Mailbox) Deliver(req stubs.Envelope, res *stubs.NilResponse) (err error) {
	m.box.Put(channels.Key{Src: req.Src, Tag: req.Tag}, req.Data)
	return
}

type peer struct {
	once   sync.Once
	client *rpc.Client
	err    error
}

// RPC is a rank of a group spread over processes. Each rank serves its own
// mailbox on a listener and dials the others the first time it sends to them.
type RPC struct {
	rank     int
	addrs    []string
	box      *channels.Mailbox
	listener net.Listener
	peers    []peer
	once     sync.Once
}

// NewRPC starts serving rank's mailbox on listener. addrs holds the mailbox
// address of every rank, indexed by rank.
func NewRPC(rank int, addrs []string, listener net.Listener) (*RPC, error) {
	if err := checkRank(rank, len(addrs)); err != nil {
		return nil, fmt.Errorf("rank %d of %d: %w", rank, len(addrs), err)
	}
	r := &RPC{
		rank:     rank,
		addrs:    addrs,
		box:      channels.NewMailbox(),
		listener: listener,
		peers:    make([]peer, len(addrs)),
	}
	server := rpc.NewServer()
	if err := server.RegisterName("Mailbox", &Mailbox{box: r.box}); err != nil {
		return nil, err
	}
	go server.Accept(listener)
	return r, nil
}

func (r *RPC) Rank() int { return r.rank }
func (r *RPC) Size() int { return len(r.addrs) }

func (r *RPC) dial(ctx context.Context, dst int) (*rpc.Client, error) {
	p := &r.peers[dst]
	p.once.Do(func() {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", r.addrs[dst])
		if err != nil {
			p.err = fmt.Errorf("dial rank %d at %s: %w", dst, r.addrs[dst], err)
			return
		}
		p.client = rpc.NewClient(conn)
	})
	return p.client, p.err
}

func (r *RPC) Send(ctx context.Context, dst, tag int, data []byte) error {
	if err := checkRank(dst, r.Size()); err != nil {
		return fmt.Errorf("send to %d: %w", dst, err)
	}
	if dst == r.rank {
		msg := make([]byte, len(data))
		copy(msg, data)
		r.box.Put(channels.Key{Src: r.rank, Tag: tag}, msg)
		return nil
	}
	client, err := r.dial(ctx, dst)
	if err != nil {
		return err
	}
	// The envelope is encoded before Go returns, so data may be reused after.
	call := client.Go(stubs.Deliver, stubs.Envelope{Src: r.rank, Tag: tag, Data: data}, new(stubs.NilResponse), make(chan *rpc.Call, 1))
	select {
	case <-call.Done:
		if call.Error == rpc.ErrShutdown {
			return ErrClosed
		}
		return call.Error
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *RPC) Recv(ctx context.Context, src, tag int) ([]byte, error) {
	if err := checkRank(src, r.Size()); err != nil {
		return nil, fmt.Errorf("recv from %d: %w", src, err)
	}
	msg, err := r.box.Take(ctx, channels.Key{Src: src, Tag: tag})
	if err == channels.ErrClosed {
		return nil, ErrClosed
	}
	return msg, err
}

// Close stops serving and hangs up on every dialled peer.
func (r *RPC) Close() error {
	var err error
	r.once.Do(func() {
		err = r.listener.Close()
		for i := range r.peers {
			if c := r.peers[i].client; c != nil {
				c.Close()
			}
		}
		r.box.Close()
	})
	return err
}
