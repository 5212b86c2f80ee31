package gol

import (
	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/stubs"
	"uk.ac.bris.cs/halolife/util"
)

// Sender reports progress on rank 0. A nil Sender or one without a channel
// drops every event.
type Sender struct {
	Events chan<- Event
	// last persisted world, for CellsFlipped diffs
	world *grid.Grid
}

func (s *Sender) send(e Event) {
	if s == nil || s.Events == nil {
		return
	}
	s.Events <- e
}

func (s *Sender) SendStateChange(turn int, state State) {
	s.send(StateChange{CompletedTurns: turn, NewState: state})
}

func (s *Sender) SendTurnComplete(turn int) {
	s.send(TurnComplete{CompletedTurns: turn})
}

func (s *Sender) SendImageOutput(turn int, filename string) {
	s.send(ImageOutputComplete{CompletedTurns: turn, Filename: filename})
}

func (s *Sender) SendFinalTurn(turn int, cells []util.Cell) {
	s.send(FinalTurnComplete{CompletedTurns: turn, Alive: cells})
}

// SendWorld reports a persisted generation: the cells flipped since the
// previous one (or all alive cells the first time) and the population.
func (s *Sender) SendWorld(turn int, world *grid.Grid) {
	if s == nil || s.Events == nil {
		return
	}
	var flipped []util.Cell
	if s.world == nil {
		flipped = stubs.GetAliveCells(world)
	} else {
		flipped = stubs.GetFlippedCells(s.world, world)
	}
	s.world = world.Clone()
	s.send(CellsFlipped{CompletedTurns: turn, Cells: flipped})
	s.send(AliveCellsCount{CompletedTurns: turn, CellsCount: world.CountAlive()})
}

// Close ends the event stream.
func (s *Sender) Close() {
	if s == nil || s.Events == nil {
		return
	}
	close(s.Events)
}
