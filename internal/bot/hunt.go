package bot

import (
	botinternal "broadside/internal/bot/internal"
	"broadside/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// probe is one direction the hunter walks from the pivot. Gated probes stop
// at cells the density field has ruled out.
type probe struct {
	dir   botinternal.Direction
	gated bool
}

var (
	verticalProbes = []probe{
		{dir: botinternal.Up}, {dir: botinternal.Down},
		{dir: botinternal.Right, gated: true}, {dir: botinternal.Left, gated: true},
	}
	horizontalProbes = []probe{
		{dir: botinternal.Right}, {dir: botinternal.Left},
		{dir: botinternal.Up, gated: true}, {dir: botinternal.Down, gated: true},
	}
	defaultProbes = []probe{
		{dir: botinternal.Up},
		{dir: botinternal.Right, gated: true},
		{dir: botinternal.Down, gated: true},
		{dir: botinternal.Left, gated: true},
	}
)

// Hunter is the hunt/target state machine. The cursor is the last shot it
// issued; the pivot is the hit the current hunt is organised around.
type Hunter struct {
	length  int
	cursor  domain.Coord
	pivot   domain.Coord
	hunting bool
	// lastAxis is the axis of the most recent default-order probe shot.
	lastAxis domain.Orientation
	// guess is the believed orientation of the pursued ship.
	guess  domain.Orientation
	logger runtime.Logger
}

// NewHunter creates a hunter for ships of at least length cells.
func NewHunter(length int, logger runtime.Logger) *Hunter {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Hunter{length: length, logger: logger}
}

// Reset returns the hunter to scanning for a new round.
func (h *Hunter) Reset() {
	h.endHunt()
	h.cursor = domain.Coord{}
	h.pivot = domain.Coord{}
}

// State reports the hunter's mode.
func (h *Hunter) State() HuntState {
	if !h.hunting {
		return HuntScanning
	}
	switch h.guess {
	case domain.Vertical:
		return HuntBranchedVertical
	case domain.Horizontal:
		return HuntBranchedHorizontal
	default:
		return HuntUnbranched
	}
}

// Pivot returns the hit the current hunt is organised around.
func (h *Hunter) Pivot() domain.Coord {
	return h.pivot
}

// Scanned records a shot chosen by the regular scan. It becomes both the
// cursor and the pivot so a hit there starts a hunt next turn.
func (h *Hunter) Scanned(c domain.Coord) {
	h.cursor = c
	h.pivot = c
}

// Next chooses a targeting shot from the current board. ok is false when the
// regular scan should be used instead.
func (h *Hunter) Next(shots *domain.Grid[domain.CellState], density *domain.Grid[int]) (domain.Coord, bool) {
	switch cur := shots.At(h.cursor); {
	case cur == domain.Kill:
		h.logger.Debug("Hunter.Next: ship sunk at %s, back to scanning", h.cursor)
		h.endHunt()
		h.cursor = h.pivot
	case cur == domain.Hit:
		if !h.hunting {
			h.logger.Debug("Hunter.Next: hit at %s, hunting", h.cursor)
		}
		h.hunting = true
		h.cursor = h.pivot
		if h.lastAxis == domain.Vertical {
			h.guess = domain.Vertical
		} else if h.lastAxis == domain.Horizontal && h.guess == domain.OrientationUnknown {
			h.guess = domain.Horizontal
		}
		if c, ok := h.branch(shots, density); ok {
			return c, true
		}
		h.endHunt()
	case h.hunting && cur == domain.Miss:
		h.cursor = h.pivot
		if c, ok := h.branch(shots, density); ok {
			return c, true
		}
		h.endHunt()
	}

	if h.hunting {
		return domain.Coord{}, false
	}
	return h.resume(shots, density)
}

// resume restarts a hunt from the first Hit cell, in row-major order, that
// still has somewhere to go.
func (h *Hunter) resume(shots *domain.Grid[domain.CellState], density *domain.Grid[int]) (domain.Coord, bool) {
	for _, hit := range botinternal.Hits(shots) {
		h.endHunt()
		h.hunting = true
		h.pivot = hit
		h.cursor = hit
		if c, ok := h.branch(shots, density); ok {
			h.logger.Debug("Hunter.resume: pursuing earlier hit at %s", hit)
			return c, true
		}
	}
	h.endHunt()
	return domain.Coord{}, false
}

func (h *Hunter) branch(shots *domain.Grid[domain.CellState], density *domain.Grid[int]) (domain.Coord, bool) {
	if h.lastAxis == domain.OrientationUnknown && h.guess == domain.OrientationUnknown {
		if botinternal.OpenSpan(shots, h.pivot, domain.Vertical) < h.length-1 {
			h.guess = domain.Horizontal
		} else if botinternal.OpenSpan(shots, h.pivot, domain.Horizontal) < h.length-1 {
			h.guess = domain.Vertical
		}
	}

	switch h.guess {
	case domain.Vertical:
		return h.probe(shots, density, verticalProbes, false)
	case domain.Horizontal:
		return h.probe(shots, density, horizontalProbes, false)
	default:
		return h.probe(shots, density, defaultProbes, true)
	}
}

func (h *Hunter) probe(shots *domain.Grid[domain.CellState], density *domain.Grid[int], probes []probe, track bool) (domain.Coord, bool) {
	for _, p := range probes {
		c, ok := walk(shots, density, h.pivot, p)
		if !ok {
			continue
		}
		if track {
			h.lastAxis = p.dir.Axis()
		}
		h.cursor = c
		return c, true
	}
	return domain.Coord{}, false
}

// walk steps from the pivot over Hit cells to the first Water cell. Miss,
// Kill, the board edge, or a zero-density cell on a gated probe end the walk.
func walk(shots *domain.Grid[domain.CellState], density *domain.Grid[int], from domain.Coord, p probe) (domain.Coord, bool) {
	for c := from.Add(p.dir.DR, p.dir.DC); shots.In(c); c = c.Add(p.dir.DR, p.dir.DC) {
		switch shots.At(c) {
		case domain.Hit:
			continue
		case domain.Water:
			if p.gated && density.At(c) == 0 {
				return domain.Coord{}, false
			}
			return c, true
		default:
			return domain.Coord{}, false
		}
	}
	return domain.Coord{}, false
}

// ResolveKill marks the Hit cells that belonged to the ship sunk at kill so
// they are not pursued again. The ship's axis is the line from the pivot to
// the kill when that line is all hits; otherwise it is the one axis along
// which the kill has hit neighbours. The contiguous hits through the kill on
// that axis are retired.
func (h *Hunter) ResolveKill(shots *domain.Grid[domain.CellState], kill domain.Coord) []domain.Coord {
	axis := domain.OrientationUnknown
	if h.hunting && h.pivot != kill && straightLine(shots, h.pivot, kill) {
		if h.pivot.Row == kill.Row {
			axis = domain.Horizontal
		} else {
			axis = domain.Vertical
		}
	} else {
		vertical := shots.At(kill.Add(-1, 0)) == domain.Hit || shots.At(kill.Add(1, 0)) == domain.Hit
		horizontal := shots.At(kill.Add(0, -1)) == domain.Hit || shots.At(kill.Add(0, 1)) == domain.Hit
		switch {
		case vertical && !horizontal:
			axis = domain.Vertical
		case horizontal && !vertical:
			axis = domain.Horizontal
		}
	}

	var run []domain.Coord
	switch axis {
	case domain.Vertical:
		run = append(hitRun(shots, kill, botinternal.Up), hitRun(shots, kill, botinternal.Down)...)
	case domain.Horizontal:
		run = append(hitRun(shots, kill, botinternal.Left), hitRun(shots, kill, botinternal.Right)...)
	}
	for _, c := range run {
		shots.Set(c, domain.Kill)
	}
	return run
}

// straightLine reports whether from and to share a row or column and every
// cell from `from` up to but excluding `to` is a Hit.
func straightLine(shots *domain.Grid[domain.CellState], from, to domain.Coord) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	for c := from; c != to; c = c.Add(dr, dc) {
		if shots.At(c) != domain.Hit {
			return false
		}
	}
	return true
}

func hitRun(shots *domain.Grid[domain.CellState], from domain.Coord, d botinternal.Direction) []domain.Coord {
	var run []domain.Coord
	for c := from.Add(d.DR, d.DC); shots.At(c) == domain.Hit; c = c.Add(d.DR, d.DC) {
		run = append(run, c)
	}
	return run
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (h *Hunter) endHunt() {
	h.hunting = false
	h.lastAxis = domain.OrientationUnknown
	h.guess = domain.OrientationUnknown
}
