package evolve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Policy selects how one generation becomes the next.
type Policy int

const (
	// Ordered scans the whole grid serially and updates cells in place, so
	// later cells see earlier updates of the same scan.
	Ordered Policy = iota
	// Synchronous applies the rule to every cell against the previous
	// generation.
	Synchronous
	// TwoPhase runs a death pass over alive cells, then a birth pass over
	// dead cells that already sees the deaths.
	TwoPhase
)

var ErrUnknownPolicy = errors.New("evolve: unknown policy")

func (p Policy) String() string {
	switch p {
	case Ordered:
		return "ordered"
	case Synchronous:
		return "synchronous"
	case TwoPhase:
		return "two-phase"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// Distributed reports whether the policy runs across several workers.
func (p Policy) Distributed() bool { return p == Synchronous || p == TwoPhase }

// ParsePolicy accepts a policy name or its number.
func ParsePolicy(s string) (Policy, error) {
	if n, err := strconv.Atoi(s); err == nil {
		p := Policy(n)
		if p < Ordered || p > TwoPhase {
			return 0, fmt.Errorf("%w: %d", ErrUnknownPolicy, n)
		}
		return p, nil
	}
	switch strings.ToLower(s) {
	case "ordered":
		return Ordered, nil
	case "synchronous", "sync", "static":
		return Synchronous, nil
	case "two-phase", "twophase", "black-white":
		return TwoPhase, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Set implements flag.Value.
func (p *Policy) Set(s string) error {
	v, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
