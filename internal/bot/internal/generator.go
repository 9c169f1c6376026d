package internal

import "broadside/internal/domain"

// LegalFunc decides whether a placement may be used.
type LegalFunc func(p domain.Placement) bool

// WindowSum adds up g over the cells a placement covers.
func WindowSum(g *domain.Grid[int], p domain.Placement) int {
	sum := 0
	for _, c := range p.Cells() {
		sum += g.At(c)
	}
	return sum
}

// Windows lists, in row-major origin order, every placement of the given
// length and orientation that lies on a size x size board and passes legal.
func Windows(size, length int, o domain.Orientation, legal LegalFunc) []domain.Placement {
	dr, dc := o.Step()
	if length <= 0 || (dr == 0 && dc == 0) {
		return nil
	}
	var out []domain.Placement
	for r := 0; r+dr*(length-1) < size; r++ {
		for c := 0; c+dc*(length-1) < size; c++ {
			p := domain.Placement{Origin: domain.Coord{Row: r, Col: c}, Orientation: o, Length: length}
			if legal == nil || legal(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// MinWindow returns the first window (row-major) with the smallest sum over g
// together with that sum. ok is false when no legal window exists.
func MinWindow(g *domain.Grid[int], length int, o domain.Orientation, legal LegalFunc) (best domain.Placement, sum int, ok bool) {
	for _, p := range Windows(g.Size(), length, o, legal) {
		s := WindowSum(g, p)
		if !ok || s < sum {
			best, sum, ok = p, s, true
		}
	}
	return best, sum, ok
}

// LegalPlacements lists every legal placement of a ship in both orientations.
func LegalPlacements(size, length int, legal LegalFunc) []domain.Placement {
	out := Windows(size, length, domain.Horizontal, legal)
	return append(out, Windows(size, length, domain.Vertical, legal)...)
}
