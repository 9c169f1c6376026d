package domain

import "fmt"

// Ocean is the host-side board for one fleet: it knows where every ship is
// and resolves incoming shots.
type Ocean struct {
	size  int
	ships []Placement
	hits  []int
	owner *Grid[int] // ship index + 1, 0 for open water
	shot  *Grid[bool]
}

func NewOcean(size int) (*Ocean, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}
	return &Ocean{
		size:  size,
		owner: NewGrid[int](size),
		shot:  NewGrid[bool](size),
	}, nil
}

// Place adds a ship to the fleet after checking bounds and overlap.
func (o *Ocean) Place(p Placement) error {
	if p.Length <= 0 || p.Length > o.size {
		return fmt.Errorf("%w: %d", ErrInvalidLength, p.Length)
	}
	cells := p.Cells()
	if len(cells) == 0 {
		return ErrInvalidOrientation
	}
	for _, c := range cells {
		if !o.owner.In(c) {
			return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
		}
		if o.owner.At(c) != 0 {
			return fmt.Errorf("%w: %s", ErrOverlap, c)
		}
	}
	o.ships = append(o.ships, p)
	o.hits = append(o.hits, 0)
	for _, c := range cells {
		o.owner.Set(c, len(o.ships))
	}
	return nil
}

// Fire resolves a shot. The last unstruck cell of a ship reports a kill.
func (o *Ocean) Fire(c Coord) (OutcomeKind, error) {
	if !o.shot.In(c) {
		return OutcomeMiss, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if o.shot.At(c) {
		return OutcomeMiss, fmt.Errorf("%w: %s", ErrAlreadyShot, c)
	}
	o.shot.Set(c, true)
	idx := o.owner.At(c) - 1
	if idx < 0 {
		return OutcomeMiss, nil
	}
	o.hits[idx]++
	if o.hits[idx] == o.ships[idx].Length {
		return OutcomeKill, nil
	}
	return OutcomeHit, nil
}

// ShipAt returns the placement covering c, if any.
func (o *Ocean) ShipAt(c Coord) (Placement, bool) {
	idx := o.owner.At(c) - 1
	if idx < 0 {
		return Placement{}, false
	}
	return o.ships[idx], true
}

// Remaining counts ships that are still afloat.
func (o *Ocean) Remaining() int {
	n := 0
	for i, p := range o.ships {
		if o.hits[i] < p.Length {
			n++
		}
	}
	return n
}

// AllSunk reports whether a non-empty fleet has been destroyed.
func (o *Ocean) AllSunk() bool {
	return len(o.ships) > 0 && o.Remaining() == 0
}
