package brain

import (
	"broadside/internal/domain"
)

// ShotRecord is one own shot and the result the host reported for it.
type ShotRecord struct {
	Coord  domain.Coord
	Result domain.OutcomeKind
}

// RoundMemory stores the engine's per-round log: the shot awaiting a result
// and everything resolved so far.
type RoundMemory struct {
	pending    *domain.Coord
	Shots      []ShotRecord
	Opponent   []domain.Coord
	Kills      int
	lastResult domain.OutcomeKind
}

// NewMemory initializes an empty round log.
func NewMemory() *RoundMemory {
	return &RoundMemory{}
}

// Reset clears the log for a new round.
func (m *RoundMemory) Reset() {
	m.pending = nil
	m.Shots = m.Shots[:0]
	m.Opponent = m.Opponent[:0]
	m.Kills = 0
	m.lastResult = domain.OutcomeMiss
}

// Fired notes a shot that has been issued but not yet resolved.
func (m *RoundMemory) Fired(c domain.Coord) {
	m.pending = &c
}

// Pending returns the shot awaiting a result, if any.
func (m *RoundMemory) Pending() (domain.Coord, bool) {
	if m.pending == nil {
		return domain.Coord{}, false
	}
	return *m.pending, true
}

// Resolve logs a shot result and clears the pending shot when it matches.
func (m *RoundMemory) Resolve(c domain.Coord, result domain.OutcomeKind) {
	if m.pending != nil && *m.pending == c {
		m.pending = nil
	}
	m.Shots = append(m.Shots, ShotRecord{Coord: c, Result: result})
	if result == domain.OutcomeKill {
		m.Kills++
	}
	m.lastResult = result
}

// OpponentFired logs an opponent shot.
func (m *RoundMemory) OpponentFired(c domain.Coord) {
	m.Opponent = append(m.Opponent, c)
}

// LastResult returns the most recent own-shot result.
func (m *RoundMemory) LastResult() domain.OutcomeKind {
	return m.lastResult
}
