package internal

import (
	"testing"

	"broadside/internal/domain"
)

func TestOpenSpan(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	pivot := domain.Coord{Row: 4, Col: 4}
	shots.Set(pivot, domain.Hit)
	shots.Set(domain.Coord{Row: 3, Col: 4}, domain.Miss)
	shots.Set(domain.Coord{Row: 6, Col: 4}, domain.Miss)

	if got := OpenSpan(shots, pivot, domain.Vertical); got != 1 {
		t.Fatalf("vertical span = %d, want 1", got)
	}
	if got := OpenSpan(shots, pivot, domain.Horizontal); got != 9 {
		t.Fatalf("horizontal span = %d, want 9", got)
	}
	if got := OpenRun(shots, domain.Coord{Row: 0, Col: 0}, Up); got != 0 {
		t.Fatalf("run off the board = %d, want 0", got)
	}
}

func TestIsolated(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](3)
	if !Isolated(shots, domain.Coord{Row: 0, Col: 0}) {
		t.Fatal("corner of empty board should be isolated")
	}
	shots.Set(domain.Coord{Row: 1, Col: 0}, domain.Miss)
	if Isolated(shots, domain.Coord{Row: 0, Col: 0}) {
		t.Fatal("cell beside a miss should not be isolated")
	}
}

func TestHitsRowMajor(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](4)
	shots.Set(domain.Coord{Row: 2, Col: 0}, domain.Hit)
	shots.Set(domain.Coord{Row: 1, Col: 3}, domain.Hit)
	shots.Set(domain.Coord{Row: 1, Col: 1}, domain.Kill)
	got := Hits(shots)
	want := []domain.Coord{{Row: 1, Col: 3}, {Row: 2, Col: 0}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Hits = %v, want %v", got, want)
	}
}
