package domain

import (
	"fmt"
	"strings"
)

// CellState is what the agent knows about a single cell of the opponent's board.
type CellState int

const (
	// Water is an untried cell.
	Water CellState = iota
	// Hit is a cell that struck a ship which is not known to be sunk.
	Hit
	// Kill is a cell belonging to a ship that has been sunk.
	Kill
	// Miss is a cell that struck nothing.
	Miss
)

func (s CellState) String() string {
	switch s {
	case Water:
		return "water"
	case Hit:
		return "hit"
	case Kill:
		return "kill"
	case Miss:
		return "miss"
	default:
		return fmt.Sprintf("cell(%d)", int(s))
	}
}

// Rune returns the single-character form used when rendering boards.
func (s CellState) Rune() rune {
	switch s {
	case Hit:
		return 'X'
	case Kill:
		return 'K'
	case Miss:
		return '*'
	default:
		return '~'
	}
}

// Orientation is the axis a ship lies along.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Step returns the row/col delta of one cell along the orientation.
func (o Orientation) Step() (int, int) {
	switch o {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	default:
		return 0, 0
	}
}

// Other returns the perpendicular orientation.
func (o Orientation) Other() Orientation {
	switch o {
	case Horizontal:
		return Vertical
	case Vertical:
		return Horizontal
	default:
		return OrientationUnknown
	}
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return OrientationUnknown, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the coord offset by dr rows and dc columns.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Placement describes a ship laid on the board.
type Placement struct {
	Origin      Coord       `json:"origin"`
	Orientation Orientation `json:"orientation"`
	Length      int         `json:"length"`
	Name        string      `json:"name"`
}

// Cells lists the cells covered by the placement, starting at the origin.
// A placement with no orientation or a non-positive length covers nothing.
func (p Placement) Cells() []Coord {
	dr, dc := p.Orientation.Step()
	if (dr == 0 && dc == 0) || p.Length <= 0 {
		return nil
	}
	cells := make([]Coord, p.Length)
	for i := range cells {
		cells[i] = p.Origin.Add(dr*i, dc*i)
	}
	return cells
}

// OutcomeKind enumerates the messages the agent receives from the game host.
type OutcomeKind int

const (
	OutcomeMiss OutcomeKind = iota
	OutcomeHit
	OutcomeKill
	OutcomeOpponentShot
	OutcomeWin
	OutcomeLose
	OutcomeTie
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeMiss:         "miss",
	OutcomeHit:          "hit",
	OutcomeKill:         "kill",
	OutcomeOpponentShot: "opponent_shot",
	OutcomeWin:          "win",
	OutcomeLose:         "lose",
	OutcomeTie:          "tie",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

// ParseOutcomeKind maps a wire name back to its kind.
func ParseOutcomeKind(s string) (OutcomeKind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range outcomeNames {
		if name == want {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

// IsShotResult reports whether the outcome resolves the agent's own last shot.
func (k OutcomeKind) IsShotResult() bool {
	return k == OutcomeHit || k == OutcomeKill || k == OutcomeMiss
}

// CellState maps a shot result to the state recorded on the shots grid.
func (k OutcomeKind) CellState() CellState {
	switch k {
	case OutcomeHit:
		return Hit
	case OutcomeKill:
		return Kill
	case OutcomeMiss:
		return Miss
	default:
		return Water
	}
}

// Outcome is a single message from the game host. Coord is meaningful for
// shot results and opponent shots only.
type Outcome struct {
	Kind  OutcomeKind `json:"kind"`
	Coord Coord       `json:"coord"`
}
