package brain

import (
	"broadside/internal/domain"
)

// Record tallies match results reported by the host.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// History is the opponent profile kept for the lifetime of a match. Its
// increment grids only ever grow; the snapshot is refreshed at round
// boundaries and poisoned as ships are placed on it.
type History struct {
	// OpponentShots counts, per cell, the rounds in which the opponent fired there.
	OpponentShots *domain.Grid[int]
	// OwnHits counts, per cell, the rounds in which an own shot there hit or sunk a ship.
	OwnHits *domain.Grid[int]
	// Snapshot is the round-start copy of OpponentShots used by learning placement.
	Snapshot *domain.Grid[int]

	Record Record
	rounds int
}

// NewHistory initializes empty increment grids for a size x size board.
func NewHistory(size int) *History {
	return &History{
		OpponentShots: domain.NewGrid[int](size),
		OwnHits:       domain.NewGrid[int](size),
		Snapshot:      domain.NewGrid[int](size),
	}
}

// Rounds returns how many times NewRound has been called, which is the
// number of finished rounds.
func (h *History) Rounds() int {
	return h.rounds
}

// FoldRound adds a finished round's board into the increment grids.
func (h *History) FoldRound(board *domain.BoardState) {
	board.OpponentView.Each(func(c domain.Coord, v domain.CellState) {
		if v != domain.Water {
			h.OpponentShots.Set(c, h.OpponentShots.At(c)+1)
		}
	})
	board.Shots.Each(func(c domain.Coord, v domain.CellState) {
		if v == domain.Hit || v == domain.Kill {
			h.OwnHits.Set(c, h.OwnHits.At(c)+1)
		}
	})
}

// StartRound counts a new round and refreshes the snapshot.
func (h *History) StartRound() {
	h.rounds++
	h.TakeSnapshot()
}

// TakeSnapshot copies the opponent-shot grid into the snapshot.
func (h *History) TakeSnapshot() {
	h.Snapshot.CopyFrom(h.OpponentShots)
}

// Poison raises the snapshot at the given cells so later ships avoid them.
func (h *History) Poison(cells []domain.Coord, weight int) {
	for _, c := range cells {
		h.Snapshot.Set(c, h.Snapshot.At(c)+weight)
	}
}

// RecordResult tallies a terminal outcome. Other outcomes are ignored.
func (h *History) RecordResult(kind domain.OutcomeKind) {
	switch kind {
	case domain.OutcomeWin:
		h.Record.Wins++
	case domain.OutcomeLose:
		h.Record.Losses++
	case domain.OutcomeTie:
		h.Record.Ties++
	}
}
