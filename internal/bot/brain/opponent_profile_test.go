package brain

import (
	"testing"

	"broadside/internal/domain"
)

func TestHistoryFoldRound(t *testing.T) {
	h := NewHistory(4)
	board := domain.NewBoardState(4)
	_ = board.Place(domain.Placement{Origin: domain.Coord{Row: 0, Col: 0}, Orientation: domain.Horizontal, Length: 3})
	_ = board.RecordOpponentShot(domain.Coord{Row: 0, Col: 1})
	_ = board.RecordOpponentShot(domain.Coord{Row: 3, Col: 3})
	_ = board.RecordShot(domain.Coord{Row: 1, Col: 1}, domain.Hit)
	_ = board.RecordShot(domain.Coord{Row: 1, Col: 2}, domain.Kill)
	_ = board.RecordShot(domain.Coord{Row: 2, Col: 2}, domain.Miss)

	h.FoldRound(board)
	h.FoldRound(board)

	tests := []struct {
		name string
		grid *domain.Grid[int]
		c    domain.Coord
		want int
	}{
		{name: "opponent hit", grid: h.OpponentShots, c: domain.Coord{Row: 0, Col: 1}, want: 2},
		{name: "opponent miss", grid: h.OpponentShots, c: domain.Coord{Row: 3, Col: 3}, want: 2},
		{name: "untouched", grid: h.OpponentShots, c: domain.Coord{Row: 2, Col: 2}, want: 0},
		{name: "own hit", grid: h.OwnHits, c: domain.Coord{Row: 1, Col: 1}, want: 2},
		{name: "own kill", grid: h.OwnHits, c: domain.Coord{Row: 1, Col: 2}, want: 2},
		{name: "own miss", grid: h.OwnHits, c: domain.Coord{Row: 2, Col: 2}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.At(tt.c); got != tt.want {
				t.Fatalf("%v = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestHistorySnapshotAndPoison(t *testing.T) {
	h := NewHistory(3)
	h.OpponentShots.Set(domain.Coord{Row: 1, Col: 1}, 2)

	h.StartRound()
	if h.Rounds() != 1 {
		t.Fatalf("Rounds = %d, want 1", h.Rounds())
	}
	if h.Snapshot.At(domain.Coord{Row: 1, Col: 1}) != 2 {
		t.Fatal("snapshot missing opponent shot count")
	}

	h.Poison([]domain.Coord{{Row: 0, Col: 0}}, 100)
	if h.Snapshot.At(domain.Coord{Row: 0, Col: 0}) != 100 {
		t.Fatal("poison not applied to snapshot")
	}
	if h.OpponentShots.At(domain.Coord{Row: 0, Col: 0}) != 0 {
		t.Fatal("poison leaked into the live grid")
	}

	h.TakeSnapshot()
	if h.Snapshot.At(domain.Coord{Row: 0, Col: 0}) != 0 {
		t.Fatal("snapshot refresh should discard poison")
	}
}

func TestHistoryRecordResult(t *testing.T) {
	h := NewHistory(2)
	for _, k := range []domain.OutcomeKind{domain.OutcomeWin, domain.OutcomeWin, domain.OutcomeLose, domain.OutcomeTie, domain.OutcomeHit} {
		h.RecordResult(k)
	}
	if h.Record != (Record{Wins: 2, Losses: 1, Ties: 1}) {
		t.Fatalf("Record = %+v", h.Record)
	}
}
