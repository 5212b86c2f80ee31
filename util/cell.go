package util

import "fmt"

// Cell is used as the return type for the testing framework.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Check panics on a non-nil error. Only for use in tools and tests where
// there is nothing sensible to recover to.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}
