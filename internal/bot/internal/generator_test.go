package internal

import (
	"testing"

	"broadside/internal/domain"
)

func TestWindows(t *testing.T) {
	got := Windows(3, 2, domain.Horizontal, nil)
	if len(got) != 6 {
		t.Fatalf("horizontal windows = %d, want 6", len(got))
	}
	if got[0].Origin != (domain.Coord{Row: 0, Col: 0}) || got[5].Origin != (domain.Coord{Row: 2, Col: 1}) {
		t.Fatalf("unexpected window order: first %v last %v", got[0].Origin, got[5].Origin)
	}
	if n := len(Windows(3, 4, domain.Vertical, nil)); n != 0 {
		t.Fatalf("oversized windows = %d, want 0", n)
	}
	if n := len(LegalPlacements(10, 3, nil)); n != 160 {
		t.Fatalf("legal placements = %d, want 160", n)
	}
}

func TestMinWindowPrefersFirstMinimum(t *testing.T) {
	g := domain.NewGrid[int](3)
	g.Fill(5)
	g.Set(domain.Coord{Row: 1, Col: 0}, 0)
	g.Set(domain.Coord{Row: 1, Col: 1}, 0)
	g.Set(domain.Coord{Row: 2, Col: 1}, 0)
	g.Set(domain.Coord{Row: 2, Col: 2}, 0)

	p, sum, ok := MinWindow(g, 2, domain.Horizontal, nil)
	if !ok || sum != 0 || p.Origin != (domain.Coord{Row: 1, Col: 0}) {
		t.Fatalf("MinWindow = %v %d %v, want origin (1,0) sum 0", p.Origin, sum, ok)
	}

	blocked := func(p domain.Placement) bool { return p.Origin.Row != 1 }
	p, _, _ = MinWindow(g, 2, domain.Horizontal, blocked)
	if p.Origin != (domain.Coord{Row: 2, Col: 1}) {
		t.Fatalf("MinWindow with legality = %v, want (2,1)", p.Origin)
	}

	none := func(domain.Placement) bool { return false }
	if _, _, ok := MinWindow(g, 2, domain.Vertical, none); ok {
		t.Fatal("expected no window")
	}
}
