package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"broadside/internal/bot"
	"broadside/internal/domain"
)

// Service referees rounds between two players.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrInvalidFleet    = errors.New("invalid fleet")
	ErrPlacementFailed = errors.New("player failed to place fleet")
	ErrTooFewPlayers   = errors.New("exactly two players are required")
)

// RoundResult summarises a refereed round.
type RoundResult struct {
	Winner int    // SeatA, SeatB or NoWinner
	Turns  int    // completed turn pairs
	Shots  [2]int // shots fired by each seat
	Hits   [2]int // shots that hit or sank, by seat
}

// MatchResult summarises consecutive rounds between the same players.
type MatchResult struct {
	Rounds []RoundResult
	Wins   [2]int
	Ties   int
}

// ValidateFleet checks that every ship fits on the board and the fleet can
// cover no more than the whole board.
func ValidateFleet(size int, fleet []int) error {
	if len(fleet) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidFleet)
	}
	total := 0
	for _, length := range fleet {
		if length <= 0 || length > size {
			return fmt.Errorf("%w: ship length %d on a %d board", ErrInvalidFleet, length, size)
		}
		total += length
	}
	if total > size*size {
		return fmt.Errorf("%w: %d cells on a %d board", ErrInvalidFleet, total, size)
	}
	return nil
}

// PlayRound places both fleets and alternates shots until a fleet is sunk.
// Within a turn pair both seats fire, so fleets sunk in the same pair tie.
func (s *Service) PlayRound(players []bot.Player, size int, fleet []int) (RoundResult, []Event, error) {
	if len(players) != 2 {
		return RoundResult{Winner: NoWinner}, nil, ErrTooFewPlayers
	}
	if err := ValidateFleet(size, fleet); err != nil {
		return RoundResult{Winner: NoWinner}, nil, err
	}

	var events []Event
	oceans := make([]*domain.Ocean, 2)
	for seat, p := range players {
		ocean, err := domain.NewOcean(size)
		if err != nil {
			return RoundResult{Winner: NoWinner}, nil, err
		}
		for _, length := range fleet {
			placement, err := p.PlaceShip(length)
			if err != nil {
				return RoundResult{Winner: NoWinner}, events, fmt.Errorf("%w: seat %d: %v", ErrPlacementFailed, seat, err)
			}
			if err := ocean.Place(placement); err != nil {
				return RoundResult{Winner: NoWinner}, events, fmt.Errorf("%w: seat %d: %v", ErrPlacementFailed, seat, err)
			}
			events = append(events, Event{Kind: EventShipPlaced, Payload: ShipPlacedPayload{Seat: seat, Placement: placement}})
		}
		oceans[seat] = ocean
	}

	first := s.rng.Intn(2)
	order := [2]int{first, 1 - first}
	result := RoundResult{Winner: NoWinner}
	maxTurns := size * size

	for turn := 1; turn <= maxTurns; turn++ {
		for _, seat := range order {
			events = append(events, s.fire(players, oceans, seat, turn, &result)...)
		}
		result.Turns = turn

		sunkA, sunkB := oceans[SeatA].AllSunk(), oceans[SeatB].AllSunk()
		if !sunkA && !sunkB {
			continue
		}
		switch {
		case sunkA && sunkB:
			result.Winner = NoWinner
		case sunkB:
			result.Winner = SeatA
		default:
			result.Winner = SeatB
		}
		break
	}

	for seat, p := range players {
		kind := domain.OutcomeTie
		if result.Winner == seat {
			kind = domain.OutcomeWin
		} else if result.Winner != NoWinner {
			kind = domain.OutcomeLose
		}
		_ = p.Update(domain.Outcome{Kind: kind})
	}
	events = append(events, Event{Kind: EventRoundEnded, Payload: RoundEndedPayload{Winner: result.Winner, Turns: result.Turns}})
	return result, events, nil
}

// fire resolves one shot by seat against the other seat's fleet. A failed or
// repeated shot wastes the turn.
func (s *Service) fire(players []bot.Player, oceans []*domain.Ocean, seat, turn int, result *RoundResult) []Event {
	target := 1 - seat
	c, err := players[seat].GetMove()
	if err != nil {
		return nil
	}
	result.Shots[seat]++

	kind, err := oceans[target].Fire(c)
	switch {
	case errors.Is(err, domain.ErrAlreadyShot):
		_ = players[seat].Update(domain.Outcome{Kind: domain.OutcomeMiss, Coord: c})
	case err != nil:
		return nil
	default:
		_ = players[seat].Update(domain.Outcome{Kind: kind, Coord: c})
		_ = players[target].Update(domain.Outcome{Kind: domain.OutcomeOpponentShot, Coord: c})
	}

	events := []Event{{Kind: EventShotFired, Payload: ShotFiredPayload{Seat: seat, Turn: turn, Coord: c, Result: kind}}}
	if err == nil && kind != domain.OutcomeMiss {
		result.Hits[seat]++
	}
	if err == nil && kind == domain.OutcomeKill {
		ship, _ := oceans[target].ShipAt(c)
		events = append(events, Event{Kind: EventShipSunk, Payload: ShipSunkPayload{Seat: seat, Placement: ship}})
	}
	return events
}

// PlayMatch plays consecutive rounds, starting a new round on both players
// between them.
func (s *Service) PlayMatch(players []bot.Player, rounds, size int, fleet []int) (MatchResult, error) {
	var match MatchResult
	for i := 0; i < rounds; i++ {
		if i > 0 {
			for _, p := range players {
				p.NewRound()
			}
		}
		result, _, err := s.PlayRound(players, size, fleet)
		if err != nil {
			return match, fmt.Errorf("round %d: %w", i+1, err)
		}
		match.Rounds = append(match.Rounds, result)
		if result.Winner == NoWinner {
			match.Ties++
		} else {
			match.Wins[result.Winner]++
		}
	}
	return match, nil
}
