package internal

import (
	"reflect"
	"testing"

	"broadside/internal/domain"
)

func TestComputeDensityEmptyBoard(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	density := ComputeDensity(shots, 3)

	tests := []struct {
		name string
		c    domain.Coord
		want int
	}{
		{name: "corner", c: domain.Coord{Row: 0, Col: 0}, want: 2},
		{name: "edge next to corner", c: domain.Coord{Row: 0, Col: 1}, want: 3},
		{name: "middle of top edge", c: domain.Coord{Row: 0, Col: 5}, want: 4},
		{name: "interior", c: domain.Coord{Row: 5, Col: 5}, want: 6},
		{name: "far corner", c: domain.Coord{Row: 9, Col: 9}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := density.At(tt.c); got != tt.want {
				t.Fatalf("density%v = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestComputeDensityBlockedCells(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](10)
	shots.Set(domain.Coord{Row: 0, Col: 3}, domain.Miss)
	shots.Set(domain.Coord{Row: 5, Col: 5}, domain.Hit)
	shots.Set(domain.Coord{Row: 8, Col: 8}, domain.Kill)

	density := ComputeDensity(shots, 3)
	if got := density.At(domain.Coord{Row: 0, Col: 3}); got != 0 {
		t.Fatalf("miss cell density = %d, want 0", got)
	}
	if got := density.At(domain.Coord{Row: 8, Col: 8}); got != 0 {
		t.Fatalf("kill cell density = %d, want 0", got)
	}
	if got := density.At(domain.Coord{Row: 0, Col: 4}); got != 2 {
		t.Fatalf("cell beside miss = %d, want 2", got)
	}
	if got := density.At(domain.Coord{Row: 5, Col: 5}); got != 6 {
		t.Fatalf("hit cell density = %d, want 6", got)
	}
}

func TestComputeDensityLengthLargerThanBoard(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](2)
	density := ComputeDensity(shots, 3)
	if best, _ := MaxOverWater(density, shots); best != 0 {
		t.Fatalf("max density = %d, want 0", best)
	}
}

func TestBestCellsIgnoresShotCells(t *testing.T) {
	shots := domain.NewGrid[domain.CellState](3)
	g := domain.NewGrid[int](3)
	g.Set(domain.Coord{Row: 0, Col: 0}, 9)
	shots.Set(domain.Coord{Row: 0, Col: 0}, domain.Hit)
	g.Set(domain.Coord{Row: 1, Col: 2}, 4)
	g.Set(domain.Coord{Row: 2, Col: 0}, 4)

	want := []domain.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 0}}
	if got := BestCells(g, shots); !reflect.DeepEqual(got, want) {
		t.Fatalf("BestCells = %v, want %v", got, want)
	}

	shots.Fill(domain.Miss)
	if got := BestCells(g, shots); got != nil {
		t.Fatalf("BestCells on full board = %v, want nil", got)
	}
}
