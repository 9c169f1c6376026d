package bot

import (
	"broadside/internal/domain"
)

// EdgePlacer puts the first four ships in spots shooters tend to reach late:
// bottom-right, top-left, down the right edge, and bottom-left.
type EdgePlacer struct{}

func (EdgePlacer) Place(req PlacementRequest) (domain.Placement, error) {
	n := req.Board.Size()
	l := req.Length

	var fixed []domain.Placement
	switch req.Index {
	case 0:
		fixed = append(fixed, domain.Placement{Origin: domain.Coord{Row: n - 1, Col: n - l}, Orientation: domain.Horizontal, Length: l})
	case 1:
		fixed = append(fixed, domain.Placement{Origin: domain.Coord{Row: 0, Col: 0}, Orientation: domain.Horizontal, Length: l})
	case 2:
		fixed = append(fixed, domain.Placement{Origin: domain.Coord{Row: 0, Col: n - 1}, Orientation: domain.Vertical, Length: l})
	case 3:
		fixed = append(fixed, domain.Placement{Origin: domain.Coord{Row: n - 1, Col: 0}, Orientation: domain.Horizontal, Length: l})
	}
	for _, p := range fixed {
		if req.legal(p) {
			return p, nil
		}
		req.Logger.Debug("EdgePlacer.Place: edge spot for ship %d taken, placing randomly", req.Index)
	}
	return RandomPlacer{}.Place(req)
}
