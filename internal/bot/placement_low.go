package bot

import (
	"broadside/internal/domain"
)

// LowPlacer keeps the first ship on the bottom row and the next two in the
// lower half of the board. Later ships are random.
type LowPlacer struct{}

func (LowPlacer) Place(req PlacementRequest) (domain.Placement, error) {
	n := req.Board.Size()
	if req.Index >= 3 {
		return RandomPlacer{}.Place(req)
	}

	half := n / 2
	for i := 0; i < req.Tuning.LowPlacementAttempts; i++ {
		var p domain.Placement
		switch {
		case req.Index == 0:
			p = domain.Placement{
				Origin:      domain.Coord{Row: n - 1, Col: req.Rng.Intn(n - req.Length + 1)},
				Orientation: domain.Horizontal,
				Length:      req.Length,
			}
		case req.Rng.Intn(2) == 0:
			p = domain.Placement{
				Origin:      domain.Coord{Row: half + req.Rng.Intn(n-half), Col: req.Rng.Intn(n - req.Length + 1)},
				Orientation: domain.Horizontal,
				Length:      req.Length,
			}
		default:
			p = domain.Placement{
				Origin:      domain.Coord{Row: half + req.Rng.Intn(n-half), Col: req.Rng.Intn(n)},
				Orientation: domain.Vertical,
				Length:      req.Length,
			}
		}
		if req.legal(p) {
			return p, nil
		}
	}

	req.Logger.Debug("LowPlacer.Place: no low spot for ship %d, placing randomly", req.Index)
	return RandomPlacer{}.Place(req)
}
