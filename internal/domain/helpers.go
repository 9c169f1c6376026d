package domain

// Grid is a square board of values addressed by Coord. Reads outside the
// board return the zero value; writes outside are dropped.
type Grid[T any] struct {
	size  int
	cells []T
}

// NewGrid allocates a size x size grid of zero values.
func NewGrid[T any](size int) *Grid[T] {
	if size < 0 {
		size = 0
	}
	return &Grid[T]{size: size, cells: make([]T, size*size)}
}

// Size returns the board dimension.
func (g *Grid[T]) Size() int {
	return g.size
}

// In reports whether c lies on the board.
func (g *Grid[T]) In(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.size && c.Col < g.size
}

func (g *Grid[T]) At(c Coord) T {
	if !g.In(c) {
		var zero T
		return zero
	}
	return g.cells[c.Row*g.size+c.Col]
}

// Set stores v at c and reports whether c was on the board.
func (g *Grid[T]) Set(c Coord, v T) bool {
	if !g.In(c) {
		return false
	}
	g.cells[c.Row*g.size+c.Col] = v
	return true
}

func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{size: g.size, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// CopyFrom overwrites g with the contents of src. Grids of different size
// copy the overlapping prefix only.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	if src.size == g.size {
		copy(g.cells, src.cells)
		return
	}
	g.Fill(*new(T))
	for r := 0; r < g.size && r < src.size; r++ {
		for c := 0; c < g.size && c < src.size; c++ {
			g.cells[r*g.size+c] = src.cells[r*src.size+c]
		}
	}
}

// Each visits every cell in row-major order.
func (g *Grid[T]) Each(fn func(c Coord, v T)) {
	for i, v := range g.cells {
		fn(Coord{Row: i / g.size, Col: i % g.size}, v)
	}
}

// Rows returns a copy of the grid as nested slices, one per row.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.size)
	for r := range rows {
		rows[r] = make([]T, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}
