package app

import "broadside/internal/domain"

// EventKind identifies events emitted while refereeing a round.
type EventKind string

const (
	EventShipPlaced EventKind = "ship_placed"
	EventShotFired  EventKind = "shot_fired"
	EventShipSunk   EventKind = "ship_sunk"
	EventRoundEnded EventKind = "round_ended"
)

// Event is an app event with a kind-specific payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type ShipPlacedPayload struct {
	Seat      int
	Placement domain.Placement
}

type ShotFiredPayload struct {
	Seat   int
	Turn   int
	Coord  domain.Coord
	Result domain.OutcomeKind
}

type ShipSunkPayload struct {
	Seat      int // seat that fired the sinking shot
	Placement domain.Placement
}

type RoundEndedPayload struct {
	Winner int // NoWinner for a tie
	Turns  int
}
