package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"uk.ac.bris.cs/halolife/grid"
	"uk.ac.bris.cs/halolife/pgm"
	"uk.ac.bris.cs/halolife/util"
)

// getDiff marks every cell where the two images differ as alive (black).
func getDiff(image1, image2 *grid.Grid) (*grid.Grid, int, error) {
	if image1.Rows() != image2.Rows() || image1.Cols() != image2.Cols() {
		return nil, 0, fmt.Errorf("%w: %dx%d vs %dx%d", grid.ErrShape, image1.Rows(), image1.Cols(), image2.Rows(), image2.Cols())
	}
	out := grid.New(image1.Rows(), image1.Cols())
	a, b, cells := image1.Bytes(), image2.Bytes(), out.Bytes()
	count := 0
	for i := range a {
		if a[i] != b[i] {
			cells[i] = grid.Alive
			count++
		}
	}
	return out, count, nil
}

func readPgmImage(filename string) *grid.Grid {
	rows, cols, err := pgm.ReadDimensions(filename)
	util.Check(err)
	image, err := pgm.Read(filename, rows, cols)
	util.Check(err)
	return image
}

func main() {
	first := flag.String("a", "snapshots/snapshot00100.pgm", "first image")
	second := flag.String("b", "check/snapshot00100.pgm", "second image")
	output := flag.String("o", "", "write the difference image here")
	flag.Parse()

	diff, count, err := getDiff(readPgmImage(*first), readPgmImage(*second))
	if err != nil {
		log.Fatal(err)
	}
	if *output != "" {
		if err := pgm.Write(*output, diff); err != nil {
			log.Fatal(err)
		}
		fmt.Println("File", *output, "output done!")
	}
	fmt.Printf("%d cells differ\n", count)
	if count > 0 {
		os.Exit(1)
	}
}
