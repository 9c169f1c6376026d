package bot

import (
	"errors"

	"broadside/internal/domain"
)

// Player is the contract a game host drives: ships are placed at the start
// of a round, then the host alternates GetMove with Update until the round
// ends and NewRound is called.
type Player interface {
	PlaceShip(length int) (domain.Placement, error)
	GetMove() (domain.Coord, error)
	Update(outcome domain.Outcome) error
	NewRound()
}

var (
	// ErrNoTargets is returned by GetMove when every cell has already been shot.
	ErrNoTargets = errors.New("no untried cells remain")
	// ErrNoRoom is returned when a ship cannot legally fit on the board.
	ErrNoRoom = errors.New("no legal placement remains")
)

// HuntState is the hunt/target controller's current mode.
type HuntState int

const (
	// HuntScanning means no ship is being pursued.
	HuntScanning HuntState = iota
	// HuntUnbranched means a hit is pursued but its orientation is unknown.
	HuntUnbranched
	// HuntBranchedVertical means the pursued ship is believed to lie vertically.
	HuntBranchedVertical
	// HuntBranchedHorizontal means the pursued ship is believed to lie horizontally.
	HuntBranchedHorizontal
)

func (s HuntState) String() string {
	switch s {
	case HuntUnbranched:
		return "unbranched"
	case HuntBranchedVertical:
		return "branched_vertical"
	case HuntBranchedHorizontal:
		return "branched_horizontal"
	default:
		return "scanning"
	}
}
