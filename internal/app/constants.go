package app

// DefaultFleet is the ship lengths placed each round when none are given.
var DefaultFleet = []int{5, 4, 3, 3, 2}

// DefaultBoardSize is the board dimension refereed rounds use by default.
const DefaultBoardSize = 10

// Seats in a refereed round.
const (
	SeatA = 0
	SeatB = 1
	// NoWinner marks a tied round.
	NoWinner = -1
)
