package internal

import "broadside/internal/domain"

// EngineTuning holds the constants that shape placement and targeting.
type EngineTuning struct {
	// RandomPlacementAttempts bounds rejection sampling before legal placements are enumerated.
	RandomPlacementAttempts int
	// LowPlacementAttempts bounds low placement before it falls back to random.
	LowPlacementAttempts int
	// LearningShotBonus is added to the density of a historically hot cell.
	LearningShotBonus int
	// LearningShotAttempts bounds the search for an isolated hot cell.
	LearningShotAttempts int
	// LearningShotMinRounds is the round count, current round included, that must be exceeded before learning shots apply.
	LearningShotMinRounds int
	// PoisonWeight marks snapshot cells already used by a learning placement.
	PoisonWeight int
}

// ComputeDensity counts, for every cell, the length-L windows that could
// still hold a ship. A window counts when it lies fully on the board and
// every cell in it is Water or Hit; horizontal and vertical windows add up.
func ComputeDensity(shots *domain.Grid[domain.CellState], length int) *domain.Grid[int] {
	n := shots.Size()
	density := domain.NewGrid[int](n)
	if length <= 0 || length > n {
		return density
	}
	for _, o := range []domain.Orientation{domain.Horizontal, domain.Vertical} {
		dr, dc := o.Step()
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				start := domain.Coord{Row: r, Col: c}
				if !windowOpen(shots, start, dr, dc, length) {
					continue
				}
				for i := 0; i < length; i++ {
					cell := start.Add(dr*i, dc*i)
					density.Set(cell, density.At(cell)+1)
				}
			}
		}
	}
	return density
}

func windowOpen(shots *domain.Grid[domain.CellState], start domain.Coord, dr, dc, length int) bool {
	for i := 0; i < length; i++ {
		cell := start.Add(dr*i, dc*i)
		if !shots.In(cell) {
			return false
		}
		if st := shots.At(cell); st != domain.Water && st != domain.Hit {
			return false
		}
	}
	return true
}

// MaxOverWater returns the largest value of g over Water cells of shots.
// ok is false when no Water cell remains.
func MaxOverWater(g *domain.Grid[int], shots *domain.Grid[domain.CellState]) (best int, ok bool) {
	g.Each(func(c domain.Coord, v int) {
		if shots.At(c) != domain.Water {
			return
		}
		if !ok || v > best {
			best, ok = v, true
		}
	})
	return best, ok
}

// CellsAt lists, in row-major order, the Water cells whose value equals want.
func CellsAt(g *domain.Grid[int], shots *domain.Grid[domain.CellState], want int) []domain.Coord {
	var out []domain.Coord
	g.Each(func(c domain.Coord, v int) {
		if v == want && shots.At(c) == domain.Water {
			out = append(out, c)
		}
	})
	return out
}

// BestCells returns the Water cells holding the maximum value of g.
func BestCells(g *domain.Grid[int], shots *domain.Grid[domain.CellState]) []domain.Coord {
	best, ok := MaxOverWater(g, shots)
	if !ok {
		return nil
	}
	return CellsAt(g, shots, best)
}

// AddAt increments the value at c by delta.
func AddAt(g *domain.Grid[int], c domain.Coord, delta int) {
	g.Set(c, g.At(c)+delta)
}
