package record

import (
	"errors"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

var ErrTooFewPoints = errors.New("record: a chart needs at least two points")

// Population is the alive-cell count of every persisted generation.
type Population struct {
	cells  int
	turns  []float64
	counts []float64
}

// NewPopulation tracks a world of cells cells, the upper bound of the y axis.
func NewPopulation(cells int) *Population {
	return &Population{cells: cells}
}

func (p *Population) Add(turn, alive int) {
	p.turns = append(p.turns, float64(turn))
	p.counts = append(p.counts, float64(alive))
}

func (p *Population) Len() int { return len(p.turns) }

// Render draws the population curve as a PNG.
func (p *Population) Render(w io.Writer) error {
	if p.Len() < 2 {
		return ErrTooFewPoints
	}
	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "turn",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "alive cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(p.cells)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "alive",
				XValues: p.turns,
				YValues: p.counts,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// WriteFile renders the chart to path.
func (p *Population) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.Render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
