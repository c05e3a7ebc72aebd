package internal

import "fmt"

// Grid manages a fixed-shape 2D grid of booleans. It backs both the persistent playing
// field and every pre-baked piece rotation. Cells are stored row-major as idx = x + y*w
// with (0,0) at the bottom-left; y increases upward. Frontends rendering to a top-down
// surface perform the inversion themselves (or use GameState.Draw, which does).
//
// A Grid value is a view onto shared cell storage, so copies of the same Grid observe
// each other's writes. The shape never changes after construction.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid returns a Grid of the given dimensions with every cell unset.
func NewGrid(dim IDim) Grid {
	return Grid{width: dim.W, height: dim.H, cells: make([]bool, dim.W*dim.H)}
}

// GridOf builds a Grid from a literal cell slice laid out as idx = x + y*w. GridOf
// panics unless len(cells) == w*h; a mismatched literal is a programming error and must
// not be silently truncated or padded.
func GridOf(dim IDim, cells []bool) Grid {
	if len(cells) != dim.W*dim.H {
		panic(fmt.Sprintf("grid literal has %d cells, want %d for size (width=%d, height=%d)",
			len(cells), dim.W*dim.H, dim.W, dim.H))
	}
	return Grid{width: dim.W, height: dim.H, cells: cells}
}

// Dims returns the width and height of this grid.
func (g Grid) Dims() IDim { return IDim{W: g.width, H: g.height} }

// idx converts (x, y) to a cell index, reporting coordinates that fall outside the grid.
func (g Grid) idx(x, y int) (int, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, fmt.Errorf("grid cell (%d, %d) exceeds grid size (width=%d, height=%d)",
			x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

// Get returns the cell at (x, y), or an out-of-range error naming the offending
// coordinate and the grid's dimensions. Use Get where the coordinate is not already
// known to be in bounds.
func (g Grid) Get(x, y int) (bool, error) {
	idx, err := g.idx(x, y)
	if err != nil {
		return false, err
	}
	return g.cells[idx], nil
}

// At returns the cell at (x, y). The coordinate must be in bounds; At panics otherwise.
// Every internal call site guarantees this by construction.
func (g Grid) At(x, y int) bool {
	idx, err := g.idx(x, y)
	if err != nil {
		panic(err)
	}
	return g.cells[idx]
}

// Set writes the cell at (x, y), with the same bounds contract as At.
func (g Grid) Set(x, y int, v bool) {
	idx, err := g.idx(x, y)
	if err != nil {
		panic(err)
	}
	g.cells[idx] = v
}

// Collides reports whether any set cell of g, once translated by offset, lands on a set
// cell of other. Only the overlapping sub-region is tested; translated cells falling
// outside other never contribute a collision. The roles are asymmetric: g is the smaller
// moving shape and other the field it is tested against.
//
// E.g. [1,0].Collides([0,1], (0,0)) == false but [1,0].Collides([0,1], (1,0)) == true.
func (g Grid) Collides(other Grid, offset IVec2) bool {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			tx, ty := x+offset.X, y+offset.Y
			if tx < 0 || tx >= other.width || ty < 0 || ty >= other.height {
				continue
			}
			if g.cells[y*g.width+x] && other.cells[ty*other.width+tx] {
				return true
			}
		}
	}
	return false
}

// CopyInto sets, for every set cell of g, the corresponding cell of other translated by
// offset. Cells landing outside other's bounds are dropped silently. This is a logical
// OR merge: destination cells are only ever turned on, never cleared.
func (g Grid) CopyInto(other *Grid, offset IVec2) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			tx, ty := x+offset.X, y+offset.Y
			if tx < 0 || tx >= other.width || ty < 0 || ty >= other.height {
				continue
			}
			if g.cells[y*g.width+x] {
				other.cells[ty*other.width+tx] = true
			}
		}
	}
}
