package gol

import (
	"fmt"

	"uk.ac.bris.cs/halolife/util"
)

// Event is sent by rank 0 to report the progress of a run.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// State of the run, reported through StateChange.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	}
	return "Incorrect State"
}

// AliveCellsCount reports the population of a persisted generation.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// ImageOutputComplete is sent once a snapshot has been written.
type ImageOutputComplete struct {
	CompletedTurns int
	Filename       string
}

type StateChange struct {
	CompletedTurns int
	NewState       State
}

// CellsFlipped lists the cells that changed since the previous CellsFlipped.
// At turn 0 it lists the initially alive cells.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

// TurnComplete is sent after every generation.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete is the last event of a run.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (e AliveCellsCount) String() string     { return fmt.Sprintf("Alive Cells %v", e.CellsCount) }
func (e ImageOutputComplete) String() string { return fmt.Sprintf("File %v Output Done", e.Filename) }
func (e StateChange) String() string         { return e.NewState.String() }
func (e CellsFlipped) String() string        { return fmt.Sprintf("%d cells flipped", len(e.Cells)) }
func (e TurnComplete) String() string        { return "" }
func (e FinalTurnComplete) String() string   { return fmt.Sprintf("Final turn %d", e.CompletedTurns) }

func (e AliveCellsCount) GetCompletedTurns() int     { return e.CompletedTurns }
func (e ImageOutputComplete) GetCompletedTurns() int { return e.CompletedTurns }
func (e StateChange) GetCompletedTurns() int         { return e.CompletedTurns }
func (e CellsFlipped) GetCompletedTurns() int        { return e.CompletedTurns }
func (e TurnComplete) GetCompletedTurns() int        { return e.CompletedTurns }
func (e FinalTurnComplete) GetCompletedTurns() int   { return e.CompletedTurns }
