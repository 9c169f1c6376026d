package bot

import (
	"fmt"
	"math/rand"
	"time"

	botinternal "broadside/internal/bot/internal"
	"broadside/internal/bot/brain"
	"broadside/internal/config"
	"broadside/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Engine is a complete battleship agent. It is not safe for concurrent use.
type Engine struct {
	cfg     config.EngineConfig
	tuning  botinternal.EngineTuning
	placer  Placer
	board   *domain.BoardState
	history *brain.History
	memory  *brain.RoundMemory
	hunter  *Hunter
	density *domain.Grid[int]
	sweep   domain.Coord
	rng     *rand.Rand
	logger  runtime.Logger
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithRand sets the random source used for placement and tie breaking.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithLogger sets the logger for hunt transitions and placement fallbacks.
func WithLogger(logger runtime.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTuning overrides DefaultTuning.
func WithTuning(t botinternal.EngineTuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithPlacer overrides the planner selected by the config.
func WithPlacer(p Placer) Option {
	return func(e *Engine) { e.placer = p }
}

// NewEngine builds an engine for the given profile.
func NewEngine(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	placer, err := NewPlacer(cfg.Placement, cfg.LearningWarmupRounds)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		tuning: DefaultTuning,
		placer: placer,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	if e.logger == nil {
		e.logger = nopLogger{}
	}

	e.board = domain.NewBoardState(cfg.BoardSize)
	e.history = brain.NewHistory(cfg.BoardSize)
	e.memory = brain.NewMemory()
	e.hunter = NewHunter(cfg.MinShipLength, e.logger)
	e.density = botinternal.ComputeDensity(e.board.Shots, cfg.MinShipLength)
	e.sweep = botinternal.SweepStart(cfg.BoardSize, cfg.MinShipLength, cfg.MiddleSweep)
	return e, nil
}

// PlaceShip chooses and records a legal placement for a ship of the given length.
func (e *Engine) PlaceShip(length int) (domain.Placement, error) {
	if length <= 0 || length > e.cfg.BoardSize {
		return domain.Placement{}, fmt.Errorf("%w: %d", domain.ErrInvalidLength, length)
	}

	index := e.board.ShipsPlaced()
	p, err := e.placer.Place(PlacementRequest{
		Board:   e.board,
		History: e.history,
		Rng:     e.rng,
		Tuning:  e.tuning,
		Logger:  e.logger,
		Length:  length,
		Index:   index,
	})
	if err != nil {
		return domain.Placement{}, err
	}
	p.Name = fmt.Sprintf("Ship%d", index)
	if err := e.board.Place(p); err != nil {
		return domain.Placement{}, fmt.Errorf("planner returned an illegal placement: %w", err)
	}
	return p, nil
}

// GetMove returns the next shot. Calling it again before the shot has been
// resolved returns the same cell.
func (e *Engine) GetMove() (domain.Coord, error) {
	shots := e.board.Shots
	if pending, ok := e.memory.Pending(); ok && shots.At(pending) == domain.Water {
		return pending, nil
	}

	e.density = botinternal.ComputeDensity(shots, e.cfg.MinShipLength)
	if !e.board.HasWater() {
		return domain.Coord{}, ErrNoTargets
	}

	if c, ok := e.hunter.Next(shots, e.density); ok {
		e.memory.Fired(c)
		return c, nil
	}

	c, err := e.scanMove()
	if err != nil {
		return domain.Coord{}, err
	}
	e.hunter.Scanned(c)
	e.memory.Fired(c)
	return c, nil
}

func (e *Engine) scanMove() (domain.Coord, error) {
	shots := e.board.Shots
	if e.cfg.Scan == config.ScanSweep {
		c, ok := botinternal.NextSweep(shots, e.sweep, e.cfg.MinShipLength)
		if !ok {
			return domain.Coord{}, ErrNoTargets
		}
		e.sweep = c
		return c, nil
	}

	e.applyLearningBonus()
	best := botinternal.BestCells(e.density, shots)
	if len(best) == 0 {
		return domain.Coord{}, ErrNoTargets
	}
	return best[e.rng.Intn(len(best))], nil
}

// applyLearningBonus nudges the density field toward a cell where own shots
// have hit most often in earlier rounds, provided nothing around it has been
// tried yet this round. It applies once more than LearningShotMinRounds
// rounds have started, counting the current one.
func (e *Engine) applyLearningBonus() {
	if !e.cfg.LearningShots || e.Round() <= e.tuning.LearningShotMinRounds {
		return
	}
	shots := e.board.Shots
	best, ok := botinternal.MaxOverWater(e.history.OwnHits, shots)
	if !ok || best <= 0 {
		return
	}
	candidates := botinternal.CellsAt(e.history.OwnHits, shots, best)
	for i := 0; i < e.tuning.LearningShotAttempts; i++ {
		c := candidates[e.rng.Intn(len(candidates))]
		if botinternal.Isolated(shots, c) {
			botinternal.AddAt(e.density, c, e.tuning.LearningShotBonus)
			return
		}
	}
}

// Update applies a message from the game host.
func (e *Engine) Update(o domain.Outcome) error {
	switch {
	case o.Kind.IsShotResult():
		if err := e.board.RecordShot(o.Coord, o.Kind.CellState()); err != nil {
			return err
		}
		e.memory.Resolve(o.Coord, o.Kind)
		if o.Kind == domain.OutcomeKill {
			if run := e.hunter.ResolveKill(e.board.Shots, o.Coord); len(run) > 0 {
				e.logger.Debug("Engine.Update: ship at %s sunk, retired %d hits", o.Coord, len(run))
			}
		}
	case o.Kind == domain.OutcomeOpponentShot:
		if err := e.board.RecordOpponentShot(o.Coord); err != nil {
			return err
		}
		e.memory.OpponentFired(o.Coord)
	case o.Kind == domain.OutcomeWin, o.Kind == domain.OutcomeLose, o.Kind == domain.OutcomeTie:
		e.history.RecordResult(o.Kind)
		e.logger.Info("Engine.Update: round %d ended: %s", e.history.Rounds(), o.Kind)
	default:
		return fmt.Errorf("%w: %d", domain.ErrUnknownOutcome, int(o.Kind))
	}
	return nil
}

// NewRound folds the finished round into the match history and clears all
// per-round state.
func (e *Engine) NewRound() {
	e.history.FoldRound(e.board)
	e.history.StartRound()
	e.board.Reset()
	e.memory.Reset()
	e.hunter.Reset()
	e.density = botinternal.ComputeDensity(e.board.Shots, e.cfg.MinShipLength)
	e.sweep = botinternal.SweepStart(e.cfg.BoardSize, e.cfg.MinShipLength, e.cfg.MiddleSweep)
	e.logger.Info("Engine.NewRound: starting round %d", e.history.Rounds()+1)
}

// Config returns the profile the engine was built with.
func (e *Engine) Config() config.EngineConfig {
	return e.cfg
}

// Density returns a copy of the density field behind the most recent move.
func (e *Engine) Density() *domain.Grid[int] {
	return e.density.Clone()
}

// HuntState reports the targeting mode.
func (e *Engine) HuntState() HuntState {
	return e.hunter.State()
}

// Round returns the 1-based number of the current round.
func (e *Engine) Round() int {
	return e.history.Rounds() + 1
}

// Board exposes the per-round board. Callers must not modify it.
func (e *Engine) Board() *domain.BoardState {
	return e.board
}

// History exposes the match history. Callers must not modify it.
func (e *Engine) History() *brain.History {
	return e.history
}

// Memory exposes the per-round shot log. Callers must not modify it.
func (e *Engine) Memory() *brain.RoundMemory {
	return e.memory
}

var _ Player = (*Engine)(nil)
