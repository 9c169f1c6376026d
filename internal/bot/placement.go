package bot

import (
	"math/rand"

	botinternal "broadside/internal/bot/internal"
	"broadside/internal/bot/brain"
	"broadside/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// PlacementRequest carries what a planner may consult for one ship.
type PlacementRequest struct {
	Board   *domain.BoardState
	History *brain.History
	Rng     *rand.Rand
	Tuning  botinternal.EngineTuning
	Logger  runtime.Logger
	Length  int
	// Index is the number of ships already placed this round.
	Index int
}

func (r PlacementRequest) legal(p domain.Placement) bool {
	return r.Board.CanPlace(p)
}

// Placer chooses where a ship goes. The returned placement is legal for the
// request's board; the caller names and records it.
type Placer interface {
	Place(req PlacementRequest) (domain.Placement, error)
}
