//go:build sdl

package sdl

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/halolife/grid"
)

// SDL must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

type window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
	width    int32
}

func newScreen(rows, cols int) (screen, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	width, height := int32(cols), int32(rows)
	w := &window{width: width, pixels: make([]byte, 4*rows*cols)}
	var err error
	w.window, err = sdl.CreateWindow("Halo Life", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if err := w.renderer.SetLogicalSize(width, height); err != nil {
		w.Destroy()
		return nil, err
	}
	w.texture, err = w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, width, height)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("create texture: %w", err)
	}
	return w, nil
}

func (w *window) Draw(world *grid.Grid) error {
	fillPixels(world, w.pixels)
	if err := w.texture.Update(nil, w.pixels, int(w.width)*4); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

func (w *window) Quit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return true
		}
	}
	return false
}

func (w *window) Destroy() {
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
