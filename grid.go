package wproj

// Grid is a square, dense, row-major array of complex accumulator cells.
// It is mutated in place during gridding and read-only during degridding.
type Grid struct {
	Size  int
	Cells []complex64
}

// NewGrid allocates a zeroed Size x Size grid.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		Cells: make([]complex64, size*size),
	}
}

// Fill sets every cell to v.
func (g *Grid) Fill(v complex64) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Size:  g.Size,
		Cells: make([]complex64, len(g.Cells)),
	}
	copy(out.Cells, g.Cells)
	return out
}

// At returns the cell at column u, row v. Intended for tests and
// diagnostics; the kernels index Cells directly.
func (g *Grid) At(u, v int) complex64 {
	return g.Cells[u+g.Size*v]
}
