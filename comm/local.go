package comm

import (
	"context"
	"fmt"

	"uk.ac.bris.cs/halolife/channels"
)

// Local is a rank of an in-process group. Every rank owns one mailbox and
// sends by putting into the destination's.
type Local struct {
	rank  int
	boxes []*channels.Mailbox
}

// NewLocal creates a group of n ranks sharing one address space.
func NewLocal(n int) []*Local {
	boxes := make([]*channels.Mailbox, n)
	for i := range boxes {
		boxes[i] = channels.NewMailbox()
	}
	group := make([]*Local, n)
	for i := range group {
		group[i] = &Local{rank: i, boxes: boxes}
	}
	return group
}

func (l *Local) Rank() int { return l.rank }
func (l *Local) Size() int { return len(l.boxes) }

func (l *Local) Send(ctx context.Context, dst, tag int, data []byte) error {
	if err := checkRank(dst, l.Size()); err != nil {
		return fmt.Errorf("send to %d: %w", dst, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := make([]byte, len(data))
	copy(msg, data)
	l.boxes[dst].Put(channels.Key{Src: l.rank, Tag: tag}, msg)
	return nil
}

func (l *Local) Recv(ctx context.Context, src, tag int) ([]byte, error) {
	if err := checkRank(src, l.Size()); err != nil {
		return nil, fmt.Errorf("recv from %d: %w", src, err)
	}
	msg, err := l.boxes[l.rank].Take(ctx, channels.Key{Src: src, Tag: tag})
	if err == channels.ErrClosed {
		return nil, ErrClosed
	}
	return msg, err
}

// Close stops this rank from receiving. Other ranks are unaffected.
func (l *Local) Close() error {
	l.boxes[l.rank].Close()
	return nil
}
