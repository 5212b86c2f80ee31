// Package snapshot decides when a generation is persisted, gathers the
// distributed bands into one grid and writes it out.
package snapshot

import (
	"fmt"
	"path/filepath"

	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/pgm"
)

const (
	DefaultDir = "snapshots"
	Prefix     = "snapshot"
)

// Due reports whether step must be persisted. A zero stride only persists
// the final step.
func Due(step, stride, steps int) bool {
	return (stride > 0 && step%stride == 0) || step == steps
}

// Name is the file name of the snapshot taken at step.
func Name(step int) string {
	return fmt.Sprintf("%s%05d%s", Prefix, step, pgm.Ext)
}

// Writer persists a gathered grid and reports where it went.
type Writer interface {
	Write(g *grid.Grid, step int) (string, error)
}

// DiskWriter stores snapshots as images under Dir, created on demand.
type DiskWriter struct {
	Dir string
}

func (w DiskWriter) Path(step int) string {
	dir := w.Dir
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(dir, Name(step))
}

func (w DiskWriter) Write(g *grid.Grid, step int) (string, error) {
	path := w.Path(step)
	if err := pgm.Write(path, g); err != nil {
		return "", fmt.Errorf("snapshot %d: %w", step, err)
	}
	return path, nil
}
