package bot

import (
	"math/rand"

	botinternal "broadside/internal/bot/internal"
	"broadside/internal/domain"
)

// RandomPlacer picks a uniform orientation and origin until the ship fits.
type RandomPlacer struct{}

func (RandomPlacer) Place(req PlacementRequest) (domain.Placement, error) {
	n := req.Board.Size()
	for i := 0; i < req.Tuning.RandomPlacementAttempts; i++ {
		p := randomCandidate(req.Rng, n, req.Length)
		if req.legal(p) {
			return p, nil
		}
	}

	legal := botinternal.LegalPlacements(n, req.Length, req.legal)
	if len(legal) == 0 {
		return domain.Placement{}, ErrNoRoom
	}
	req.Logger.Debug("RandomPlacer.Place: sampling exhausted, drawing from %d legal spots", len(legal))
	return legal[req.Rng.Intn(len(legal))], nil
}

// randomCandidate draws an in-bounds placement that may overlap own ships.
func randomCandidate(rng *rand.Rand, n, length int) domain.Placement {
	if rng.Intn(2) == 0 {
		return domain.Placement{
			Origin:      domain.Coord{Row: rng.Intn(n), Col: rng.Intn(n - length + 1)},
			Orientation: domain.Horizontal,
			Length:      length,
		}
	}
	return domain.Placement{
		Origin:      domain.Coord{Row: rng.Intn(n - length + 1), Col: rng.Intn(n)},
		Orientation: domain.Vertical,
		Length:      length,
	}
}
