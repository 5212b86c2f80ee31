// Package record turns the event stream of a run into artefacts: an MJPEG
// video of the persisted generations and a population chart.
package record

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"github.com/icza/mjpeg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"uk.ac.bris.cs/halolife/grid"
)

// Video appends one JPEG frame per world to an AVI file.
type Video struct {
	writer mjpeg.AviWriter
	scale  int
	buf    bytes.Buffer
	frames int
}

// NewVideo creates the AVI at path for rows x cols worlds, each cell drawn as
// a scale x scale square.
func NewVideo(path string, rows, cols, scale, fps int) (*Video, error) {
	if scale < 1 {
		scale = 1
	}
	w, err := mjpeg.New(path, int32(cols*scale), int32(rows*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", path, err)
	}
	return &Video{writer: w, scale: scale}, nil
}

// Frame renders world with label in the top-left corner.
func Frame(world *grid.Grid, scale int, label string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, world.Cols()*scale, world.Rows()*scale))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for y := 0; y < world.Rows(); y++ {
		for x, cell := range world.Row(y) {
			if cell == grid.Alive {
				r := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
				draw.Draw(img, r, image.Black, image.Point{}, draw.Src)
			}
		}
	}
	if label != "" {
		addLabel(img, 2, 2, label)
	}
	return img
}

func addLabel(img *image.RGBA, x, y int, label string) {
	face := basicfont.Face7x13
	bg := image.Rect(x, y, x+len(label)*7+4, y+face.Height+2)
	draw.Draw(img, bg, image.NewUniform(color.RGBA{255, 255, 255, 200}), image.Point{}, draw.Over)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{200, 0, 0, 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x + 2), Y: fixed.I(y + face.Ascent)},
	}
	d.DrawString(label)
}

// AddWorld encodes world as the next frame.
func (v *Video) AddWorld(world *grid.Grid, turn int) error {
	v.buf.Reset()
	img := Frame(world, v.scale, fmt.Sprintf("step %05d", turn))
	if err := jpeg.Encode(&v.buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return err
	}
	v.frames++
	return v.writer.AddFrame(v.buf.Bytes())
}

func (v *Video) Frames() int { return v.frames }

// Close finalises the AVI index. The file is unusable until then.
func (v *Video) Close() error { return v.writer.Close() }
