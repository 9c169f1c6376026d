package internal

import "broadside/internal/domain"

// NextSweep advances a sweep cursor across the board in strides of step
// columns. Wrapping onto a new row starts at column row mod step, so
// consecutive rows are staggered. A cell already tried is skipped one cell
// at a time, as is a cell whose upper neighbour was a Miss. When every Water
// cell sits under a Miss the upper-neighbour rule is dropped. ok is false
// only when no Water cell remains.
func NextSweep(shots *domain.Grid[domain.CellState], cursor domain.Coord, step int) (domain.Coord, bool) {
	n := shots.Size()
	if n == 0 {
		return cursor, false
	}
	if step <= 0 {
		step = 1
	}

	next := domain.Coord{Row: cursor.Row, Col: cursor.Col + step}
	if next.Row < 0 || next.Row >= n {
		next.Row = 0
	}
	if next.Col < 0 {
		next.Col = 0
	}
	if next.Col >= n {
		next.Row++
		if next.Row >= n {
			next.Row = 0
		}
		next.Col = next.Row % step
	}

	limit := n * n
	start := next
	for i := 0; i < limit; i++ {
		if shots.At(next) == domain.Water && !belowMiss(shots, next) {
			return next, true
		}
		next = stepForward(next, n)
	}
	next = start
	for i := 0; i < limit; i++ {
		if shots.At(next) == domain.Water {
			return next, true
		}
		next = stepForward(next, n)
	}
	return cursor, false
}

func belowMiss(shots *domain.Grid[domain.CellState], c domain.Coord) bool {
	return c.Row != 0 && shots.At(c.Add(-1, 0)) == domain.Miss
}

// stepForward moves one cell in row-major order, wrapping to the origin.
func stepForward(c domain.Coord, n int) domain.Coord {
	c.Col++
	if c.Col >= n {
		c.Col = 0
		c.Row++
	}
	if c.Row >= n {
		c.Row = 0
	}
	return c
}

// SweepStart returns the cursor a sweep resumes from at the start of a round.
// The first advance lands on column 0 of the chosen row.
func SweepStart(size, step int, middle bool) domain.Coord {
	row := 0
	if middle && size >= 2 {
		row = size/2 - 1
	}
	return domain.Coord{Row: row, Col: -step}
}
