package comm

import (
	"context"
	"encoding/binary"
	"fmt"
)

const (
	tagBarrier = 20
	tagRelease = 21
)

// Barrier returns once every rank of the group has entered it. Rank 0
// collects an arrival from everyone else and then releases them.
func Barrier(ctx context.Context, c Comm) error {
	if c.Rank() != 0 {
		if err := c.Send(ctx, 0, tagBarrier, nil); err != nil {
			return err
		}
		_, err := c.Recv(ctx, 0, tagRelease)
		return err
	}
	for src := 1; src < c.Size(); src++ {
		if _, err := c.Recv(ctx, src, tagBarrier); err != nil {
			return err
		}
	}
	for dst := 1; dst < c.Size(); dst++ {
		if err := c.Send(ctx, dst, tagRelease, nil); err != nil {
			return err
		}
	}
	return nil
}

// SendInts sends values as big-endian 64-bit integers.
func SendInts(ctx context.Context, c Comm, dst, tag int, values ...int) error {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint64(buf[8*i:], uint64(int64(v)))
	}
	return c.Send(ctx, dst, tag, buf)
}

// RecvInts receives exactly n integers sent with SendInts.
func RecvInts(ctx context.Context, c Comm, src, tag, n int) ([]int, error) {
	buf, err := c.Recv(ctx, src, tag)
	if err != nil {
		return nil, err
	}
	if len(buf) != 8*n {
		return nil, fmt.Errorf("%w: %d bytes for %d ints", ErrSize, len(buf), n)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = int(int64(binary.BigEndian.Uint64(buf[8*i:])))
	}
	return values, nil
}
