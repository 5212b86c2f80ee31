package evolve

import (
	"context"

	"uk.ac.bris.cs/halolife/grid"
)

// Refresher brings the ghost border of a band up to date.
type Refresher interface {
	Refresh(ctx context.Context, h *grid.Halo) error
}

// Stepper owns the double buffer of one band and advances it under a policy.
type Stepper struct {
	policy    Policy
	engine    *Engine
	refresher Refresher
	cur, next *grid.Halo
}

// NewStepper copies band into a fresh pair of halo buffers. The Ordered
// policy ignores refresher and the engine's threads; band must then be the
// whole grid.
func NewStepper(policy Policy, engine *Engine, refresher Refresher, band *grid.Grid) *Stepper {
	next := grid.NewHalo(band.Rows(), band.Cols())
	return &Stepper{
		policy:    policy,
		engine:    engine,
		refresher: refresher,
		cur:       grid.HaloFrom(band),
		next:      next,
	}
}

func (s *Stepper) swap() { s.cur, s.next = s.next, s.cur }

// Step advances the band by one generation. On error the band is left at
// the last completed generation or sub-step.
func (s *Stepper) Step(ctx context.Context) error {
	switch s.policy {
	case Ordered:
		if err := ctx.Err(); err != nil {
			return err
		}
		OrderedStep(s.cur)
		return nil
	case TwoPhase:
		if err := s.refresher.Refresh(ctx, s.cur); err != nil {
			return err
		}
		if err := s.engine.Black(ctx, s.cur, s.next); err != nil {
			return err
		}
		s.swap()
		if err := s.refresher.Refresh(ctx, s.cur); err != nil {
			return err
		}
		if err := s.engine.White(ctx, s.cur, s.next); err != nil {
			return err
		}
		s.swap()
		return nil
	default:
		if err := s.refresher.Refresh(ctx, s.cur); err != nil {
			return err
		}
		if err := s.engine.Synchronous(ctx, s.cur, s.next); err != nil {
			return err
		}
		s.swap()
		return nil
	}
}

// Band returns a copy of the current interior.
func (s *Stepper) Band() *grid.Grid { return s.cur.Interior() }

// BandInto writes the current interior row-major into dst.
func (s *Stepper) BandInto(dst []byte) { s.cur.InteriorInto(dst) }
