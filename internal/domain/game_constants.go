package domain

import "errors"

const (
	// DefaultBoardSize is the board dimension used when none is configured.
	DefaultBoardSize = 10
	// MinShipLength is the shortest ship the engine reasons about.
	MinShipLength = 3
)

var (
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrOverlap            = errors.New("placement overlaps an existing ship")
	ErrInvalidLength      = errors.New("invalid ship length")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidBoardSize   = errors.New("invalid board size")
	ErrAlreadyShot        = errors.New("cell already shot")
	ErrUnknownOutcome     = errors.New("unknown outcome")
)
