package domain

import "fmt"

// BoardState holds the agent's per-round view: its own shots at the opponent,
// the opponent's shots at it, and where its own ships lie.
type BoardState struct {
	// Shots records the outcome of each own shot.
	Shots *Grid[CellState]
	// OpponentView records opponent shots: Hit where a shot landed on an own ship, Miss elsewhere.
	OpponentView *Grid[CellState]
	// Ships marks cells occupied by own ships.
	Ships *Grid[bool]

	placed []Placement
}

// NewBoardState allocates empty grids for a size x size board.
func NewBoardState(size int) *BoardState {
	return &BoardState{
		Shots:        NewGrid[CellState](size),
		OpponentView: NewGrid[CellState](size),
		Ships:        NewGrid[bool](size),
	}
}

func (b *BoardState) Size() int {
	return b.Shots.Size()
}

// Reset clears all per-round state.
func (b *BoardState) Reset() {
	b.Shots.Fill(Water)
	b.OpponentView.Fill(Water)
	b.Ships.Fill(false)
	b.placed = b.placed[:0]
}

// ShipsPlaced returns how many ships have been placed this round.
func (b *BoardState) ShipsPlaced() int {
	return len(b.placed)
}

// Placements returns the ships placed this round in placement order.
func (b *BoardState) Placements() []Placement {
	out := make([]Placement, len(b.placed))
	copy(out, b.placed)
	return out
}

// CanPlace reports whether p lies fully on the board without touching an own ship.
func (b *BoardState) CanPlace(p Placement) bool {
	cells := p.Cells()
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !b.Ships.In(c) || b.Ships.At(c) {
			return false
		}
	}
	return true
}

// Place marks the ship cells as occupied.
func (b *BoardState) Place(p Placement) error {
	if p.Length <= 0 || p.Length > b.Size() {
		return fmt.Errorf("%w: %d", ErrInvalidLength, p.Length)
	}
	cells := p.Cells()
	if len(cells) == 0 {
		return ErrInvalidOrientation
	}
	for _, c := range cells {
		if !b.Ships.In(c) {
			return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
		}
		if b.Ships.At(c) {
			return fmt.Errorf("%w: %s", ErrOverlap, c)
		}
	}
	for _, c := range cells {
		b.Ships.Set(c, true)
	}
	b.placed = append(b.placed, p)
	return nil
}

// RecordShot stores an own shot result. Kill is terminal and never downgraded,
// and a Hit cell is not turned back into a Miss.
func (b *BoardState) RecordShot(c Coord, state CellState) error {
	if !b.Shots.In(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	switch cur := b.Shots.At(c); {
	case cur == Kill:
		return nil
	case cur == Hit && state == Miss:
		return nil
	}
	b.Shots.Set(c, state)
	return nil
}

// RecordOpponentShot notes where the opponent fired.
func (b *BoardState) RecordOpponentShot(c Coord) error {
	if !b.OpponentView.In(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if b.Ships.At(c) {
		b.OpponentView.Set(c, Hit)
	} else {
		b.OpponentView.Set(c, Miss)
	}
	return nil
}

// HasWater reports whether any untried cell remains.
func (b *BoardState) HasWater() bool {
	found := false
	b.Shots.Each(func(_ Coord, v CellState) {
		if v == Water {
			found = true
		}
	})
	return found
}
