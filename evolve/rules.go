package evolve

import "uk.ac.bris.cs/halolife/grid"

// NeighborCount counts the alive cells of the Moore neighbourhood of padded
// cell (r, c). The ghost border must be fresh.
func NeighborCount(h *grid.Halo, r, c int) int {
	return count(h.Row(r-1), h.Row(r), h.Row(r+1), c)
}

func count(above, row, below []byte, c int) int {
	n := 0
	for _, line := range [3][]byte{above, row, below} {
		for dc := -1; dc <= 1; dc++ {
			if line[c+dc] == grid.Alive {
				n++
			}
		}
	}
	if row[c] == grid.Alive {
		n--
	}
	return n
}

// Rule is the transition shared by the synchronous and ordered policies.
func Rule(cell byte, neighbours int) byte {
	switch {
	case neighbours < 2 || neighbours > 3:
		return grid.Dead
	case neighbours == 3:
		return grid.Alive
	}
	return cell
}

// blackRule only lets alive cells die.
func blackRule(cell byte, neighbours int) byte {
	if cell == grid.Alive && (neighbours < 2 || neighbours > 3) {
		return grid.Dead
	}
	return cell
}

// whiteRule only lets dead cells be born.
func whiteRule(cell byte, neighbours int) byte {
	if cell == grid.Dead && neighbours == 3 {
		return grid.Alive
	}
	return cell
}
