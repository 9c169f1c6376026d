package bot

import (
	botinternal "broadside/internal/bot/internal"
	"broadside/internal/domain"
)

// LearningPlacer hides ships where the opponent has fired least in earlier
// rounds. Until WarmupRounds rounds have been played it places like EdgePlacer.
type LearningPlacer struct {
	WarmupRounds int
}

func (lp LearningPlacer) Place(req PlacementRequest) (domain.Placement, error) {
	if req.History == nil || req.History.Rounds() < lp.WarmupRounds {
		return EdgePlacer{}.Place(req)
	}

	orientation, ok := lp.orientation(req)
	if !ok {
		return RandomPlacer{}.Place(req)
	}

	best, _, ok := botinternal.MinWindow(req.History.Snapshot, req.Length, orientation, req.legal)
	if !ok {
		best, _, ok = botinternal.MinWindow(req.History.Snapshot, req.Length, orientation.Other(), req.legal)
	}
	if !ok {
		return RandomPlacer{}.Place(req)
	}
	req.History.Poison(best.Cells(), req.Tuning.PoisonWeight)
	return best, nil
}

// orientation compares the quietest legal window of each axis on the live
// opponent-shot grid. Ties are broken at random.
func (lp LearningPlacer) orientation(req PlacementRequest) (domain.Orientation, bool) {
	live := req.History.OpponentShots
	_, hsum, hok := botinternal.MinWindow(live, req.Length, domain.Horizontal, req.legal)
	_, vsum, vok := botinternal.MinWindow(live, req.Length, domain.Vertical, req.legal)
	switch {
	case !hok && !vok:
		return domain.OrientationUnknown, false
	case !vok, hok && hsum < vsum:
		return domain.Horizontal, true
	case !hok, vsum < hsum:
		return domain.Vertical, true
	case req.Rng.Intn(2) == 0:
		return domain.Horizontal, true
	default:
		return domain.Vertical, true
	}
}
