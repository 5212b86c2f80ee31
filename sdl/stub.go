//go:build !sdl

package sdl

func newScreen(rows, cols int) (screen, error) {
	return nil, ErrUnavailable
}
