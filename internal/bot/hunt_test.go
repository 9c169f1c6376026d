package bot

import (
	"testing"

	botinternal "broadside/internal/bot/internal"
	"broadside/internal/domain"
)

type huntStep struct {
	want      domain.Coord
	wantState HuntState
	result    domain.CellState
}

func runHunt(t *testing.T, h *Hunter, shots *domain.Grid[domain.CellState], steps []huntStep) {
	t.Helper()
	for i, s := range steps {
		got, ok := h.Next(shots, botinternal.ComputeDensity(shots, 3))
		if !ok {
			t.Fatalf("step %d: hunter gave up, want %v", i, s.want)
		}
		if got != s.want {
			t.Fatalf("step %d: shot %v, want %v", i, got, s.want)
		}
		if st := h.State(); st != s.wantState {
			t.Fatalf("step %d: state %v, want %v", i, st, s.wantState)
		}
		shots.Set(got, s.result)
		if s.result == domain.Kill {
			h.ResolveKill(shots, got)
		}
	}
}

func TestHunterBranchesAndSinks(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	h := NewHunter(3, nil)
	pivot := domain.Coord{Row: 4, Col: 4}
	h.Scanned(pivot)
	shots.Set(pivot, domain.Hit)

	runHunt(t, h, shots, []huntStep{
		{want: domain.Coord{Row: 3, Col: 4}, wantState: HuntUnbranched, result: domain.Miss},
		{want: domain.Coord{Row: 4, Col: 5}, wantState: HuntUnbranched, result: domain.Hit},
		{want: domain.Coord{Row: 4, Col: 6}, wantState: HuntBranchedHorizontal, result: domain.Miss},
		{want: domain.Coord{Row: 4, Col: 3}, wantState: HuntBranchedHorizontal, result: domain.Kill},
	})

	for _, c := range []domain.Coord{{Row: 4, Col: 4}, {Row: 4, Col: 5}} {
		if got := shots.At(c); got != domain.Kill {
			t.Fatalf("sunk ship cell %v = %v, want kill", c, got)
		}
	}
	if _, ok := h.Next(shots, botinternal.ComputeDensity(shots, 3)); ok {
		t.Fatal("hunter should hand back to the scan after a kill")
	}
	if h.State() != HuntScanning {
		t.Fatalf("state after kill = %v, want scanning", h.State())
	}
}

func TestHunterVerticalAfterVerticalHit(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	h := NewHunter(3, nil)
	pivot := domain.Coord{Row: 5, Col: 5}
	h.Scanned(pivot)
	shots.Set(pivot, domain.Hit)

	runHunt(t, h, shots, []huntStep{
		{want: domain.Coord{Row: 4, Col: 5}, wantState: HuntUnbranched, result: domain.Hit},
		{want: domain.Coord{Row: 3, Col: 5}, wantState: HuntBranchedVertical, result: domain.Miss},
		{want: domain.Coord{Row: 6, Col: 5}, wantState: HuntBranchedVertical, result: domain.Kill},
	})
	for _, c := range []domain.Coord{{Row: 4, Col: 5}, {Row: 5, Col: 5}} {
		if got := shots.At(c); got != domain.Kill {
			t.Fatalf("sunk ship cell %v = %v, want kill", c, got)
		}
	}
}

func TestHunterInfersOrientationFromOpenSpace(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	shots.Set(domain.Coord{Row: 3, Col: 4}, domain.Miss)
	shots.Set(domain.Coord{Row: 5, Col: 4}, domain.Miss)
	pivot := domain.Coord{Row: 4, Col: 4}
	shots.Set(pivot, domain.Hit)

	h := NewHunter(3, nil)
	h.Scanned(pivot)
	runHunt(t, h, shots, []huntStep{
		{want: domain.Coord{Row: 4, Col: 5}, wantState: HuntBranchedHorizontal, result: domain.Miss},
		{want: domain.Coord{Row: 4, Col: 3}, wantState: HuntBranchedHorizontal, result: domain.Hit},
		{want: domain.Coord{Row: 4, Col: 2}, wantState: HuntBranchedHorizontal, result: domain.Kill},
	})

	shots = domain.NewGrid[domain.CellState](10)
	shots.Set(domain.Coord{Row: 4, Col: 3}, domain.Miss)
	shots.Set(domain.Coord{Row: 4, Col: 5}, domain.Miss)
	shots.Set(pivot, domain.Hit)
	h = NewHunter(3, nil)
	h.Scanned(pivot)
	runHunt(t, h, shots, []huntStep{
		{want: domain.Coord{Row: 3, Col: 4}, wantState: HuntBranchedVertical, result: domain.Miss},
	})
}

func TestHunterResumesUnpursuedHit(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	shots.Set(domain.Coord{Row: 2, Col: 2}, domain.Hit)
	shots.Set(domain.Coord{Row: 7, Col: 7}, domain.Hit)

	h := NewHunter(3, nil)
	runHunt(t, h, shots, []huntStep{
		{want: domain.Coord{Row: 1, Col: 2}, wantState: HuntUnbranched, result: domain.Miss},
	})
	if h.Pivot() != (domain.Coord{Row: 2, Col: 2}) {
		t.Fatalf("pivot = %v, want first hit in row-major order", h.Pivot())
	}
}

func TestHunterGivesUpWhenBoxedIn(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	pivot := domain.Coord{Row: 0, Col: 0}
	shots.Set(pivot, domain.Hit)
	shots.Set(domain.Coord{Row: 0, Col: 1}, domain.Miss)
	shots.Set(domain.Coord{Row: 1, Col: 0}, domain.Miss)

	h := NewHunter(3, nil)
	h.Scanned(pivot)
	if c, ok := h.Next(shots, botinternal.ComputeDensity(shots, 3)); ok {
		t.Fatalf("boxed-in hit produced shot %v", c)
	}
	if h.State() != HuntScanning {
		t.Fatalf("state = %v, want scanning", h.State())
	}
}

func TestResolveKillWithoutHunt(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	shots.Set(domain.Coord{Row: 5, Col: 1}, domain.Hit)
	shots.Set(domain.Coord{Row: 5, Col: 2}, domain.Hit)
	shots.Set(domain.Coord{Row: 8, Col: 8}, domain.Hit)
	kill := domain.Coord{Row: 5, Col: 3}
	shots.Set(kill, domain.Kill)

	h := NewHunter(3, nil)
	if run := h.ResolveKill(shots, kill); len(run) != 2 {
		t.Fatalf("retired %d cells, want 2", len(run))
	}
	if shots.At(domain.Coord{Row: 8, Col: 8}) != domain.Hit {
		t.Fatal("unrelated hit was retired")
	}

	lonely := domain.Coord{Row: 0, Col: 9}
	shots.Set(lonely, domain.Kill)
	if run := h.ResolveKill(shots, lonely); len(run) != 0 {
		t.Fatalf("kill with no neighbouring hits retired %v", run)
	}
}
