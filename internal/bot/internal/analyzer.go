package internal

import "broadside/internal/domain"

// Direction is one of the four orthogonal steps on the board.
type Direction struct {
	DR, DC int
}

var (
	Up    = Direction{DR: -1}
	Down  = Direction{DR: 1}
	Left  = Direction{DC: -1}
	Right = Direction{DC: 1}
)

// Directions lists the neighbours in up, right, down, left order.
var Directions = []Direction{Up, Right, Down, Left}

// Axis returns the orientation the direction travels along.
func (d Direction) Axis() domain.Orientation {
	if d.DR != 0 {
		return domain.Vertical
	}
	return domain.Horizontal
}

// OpenRun counts the contiguous Water cells stepping away from `from` in d,
// not counting `from` itself.
func OpenRun(shots *domain.Grid[domain.CellState], from domain.Coord, d Direction) int {
	n := 0
	for c := from.Add(d.DR, d.DC); shots.In(c) && shots.At(c) == domain.Water; c = c.Add(d.DR, d.DC) {
		n++
	}
	return n
}

// OpenSpan returns the open Water run through `from` along an axis,
// excluding `from`.
func OpenSpan(shots *domain.Grid[domain.CellState], from domain.Coord, axis domain.Orientation) int {
	if axis == domain.Vertical {
		return OpenRun(shots, from, Up) + OpenRun(shots, from, Down)
	}
	return OpenRun(shots, from, Left) + OpenRun(shots, from, Right)
}

// Isolated reports whether every on-board orthogonal neighbour of c is Water.
func Isolated(shots *domain.Grid[domain.CellState], c domain.Coord) bool {
	for _, d := range Directions {
		n := c.Add(d.DR, d.DC)
		if shots.In(n) && shots.At(n) != domain.Water {
			return false
		}
	}
	return true
}

// Hits lists all Hit cells in row-major order.
func Hits(shots *domain.Grid[domain.CellState]) []domain.Coord {
	var out []domain.Coord
	shots.Each(func(c domain.Coord, v domain.CellState) {
		if v == domain.Hit {
			out = append(out, c)
		}
	})
	return out
}
