package internal_test

import (
	"github.com/niftysoft/blockfall/internal"
	"github.com/stretchr/testify/assert"
	"testing"
)

func dim(w, h int) internal.IDim { return internal.IDim{W: w, H: h} }

func TestNewGrid(t *testing.T) {
	grid := internal.NewGrid(dim(10, 20))
	assert.Equal(t, dim(10, 20), grid.Dims())

	for x := 0; x < 10; x++ {
		for y := 0; y < 20; y++ {
			v, err := grid.Get(x, y)
			assert.NoError(t, err)
			assert.False(t, v)
		}
	}
}

func TestGridOf_PanicsOnSizeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		internal.GridOf(dim(2, 2), []bool{true, false, true})
	})
	assert.Panics(t, func() {
		internal.GridOf(dim(2, 2), make([]bool, 5))
	})
	assert.NotPanics(t, func() {
		internal.GridOf(dim(2, 2), make([]bool, 4))
	})
}

func TestGrid_Get(t *testing.T) {
	grid := internal.NewGrid(dim(10, 10))

	_, err := grid.Get(0, 0)
	assert.NoError(t, err)
	_, err = grid.Get(9, 9)
	assert.NoError(t, err)

	_, err = grid.Get(11, 0)
	assert.Error(t, err)
	_, err = grid.Get(0, 11)
	assert.Error(t, err)
	_, err = grid.Get(-1, 0)
	assert.Error(t, err)
	_, err = grid.Get(0, -1)
	assert.Error(t, err)
}

func TestGrid_SetAndAt(t *testing.T) {
	grid := internal.NewGrid(dim(10, 10))

	grid.Set(0, 0, true)
	assert.True(t, grid.At(0, 0))
	assert.False(t, grid.At(0, 1))
	assert.False(t, grid.At(1, 0))

	grid.Set(0, 0, false)
	grid.Set(1, 0, true)
	assert.False(t, grid.At(0, 0))
	assert.False(t, grid.At(0, 1))
	assert.True(t, grid.At(1, 0))
}

func TestGrid_AtOutOfBoundsPanics(t *testing.T) {
	grid := internal.NewGrid(dim(10, 10))
	assert.Panics(t, func() { grid.At(11, 0) })
	assert.Panics(t, func() { grid.Set(11, 0, true) })
	assert.Panics(t, func() { grid.At(0, -1) })
}

func TestGrid_Collides(t *testing.T) {
	allEmpty := internal.GridOf(dim(2, 2), []bool{false, false, false, false})
	allFull := internal.GridOf(dim(2, 2), []bool{true, true, true, true})
	firstSet := internal.GridOf(dim(2, 2), []bool{true, false, false, false})
	secondSet := internal.GridOf(dim(2, 2), []bool{false, true, false, false})

	// An empty grid collides with nothing regardless of offset.
	for off := 0; off < 4; off++ {
		assert.False(t, allEmpty.Collides(allFull, internal.IVec2{X: off}))
		assert.False(t, allEmpty.Collides(allFull, internal.IVec2{Y: off}))
	}
	assert.False(t, allEmpty.Collides(allEmpty, internal.IVec2{}))

	// Grids with set cells collide with themselves at zero offset, but not once the
	// offset pushes the overlap past every set cell.
	assert.True(t, allFull.Collides(allFull, internal.IVec2{}))
	assert.True(t, firstSet.Collides(firstSet, internal.IVec2{}))
	assert.True(t, secondSet.Collides(secondSet, internal.IVec2{}))
	assert.False(t, allFull.Collides(allFull, internal.IVec2{X: 2}))
	assert.False(t, firstSet.Collides(firstSet, internal.IVec2{X: 1}))
	assert.False(t, secondSet.Collides(firstSet, internal.IVec2{X: 1}))

	// firstSet and secondSet only collide once the offset lines their cells up.
	assert.False(t, firstSet.Collides(secondSet, internal.IVec2{}))
	assert.True(t, firstSet.Collides(secondSet, internal.IVec2{X: 1}))

	// Negative offsets are translated the same way.
	assert.True(t, secondSet.Collides(firstSet, internal.IVec2{X: -1}))
	assert.False(t, firstSet.Collides(secondSet, internal.IVec2{X: -1}))
}

func TestGrid_CollidesSingleCell(t *testing.T) {
	// The documented asymmetric-role case: [1,0] against [0,1].
	a := internal.GridOf(dim(2, 1), []bool{true, false})
	b := internal.GridOf(dim(2, 1), []bool{false, true})

	assert.False(t, a.Collides(b, internal.IVec2{}))
	assert.True(t, a.Collides(b, internal.IVec2{X: 1}))
}

func TestGrid_CopyInto(t *testing.T) {
	src := internal.NewGrid(dim(4, 4))
	src.Set(0, 0, true)
	src.Set(1, 1, true)

	// Offset by 1 in the x dim.
	dst := internal.NewGrid(dim(4, 4))
	src.CopyInto(&dst, internal.IVec2{X: 1})
	assert.Equal(t, internal.GridOf(dim(4, 4), []bool{
		false, true, false, false,
		false, false, true, false,
		false, false, false, false,
		false, false, false, false,
	}), dst)

	// Offset by 1 in the y dim.
	dst = internal.NewGrid(dim(4, 4))
	src.CopyInto(&dst, internal.IVec2{Y: 1})
	assert.Equal(t, internal.GridOf(dim(4, 4), []bool{
		false, false, false, false,
		true, false, false, false,
		false, true, false, false,
		false, false, false, false,
	}), dst)

	// Cells pushed off the edge of dst are dropped without error.
	dst = internal.NewGrid(dim(4, 4))
	src.CopyInto(&dst, internal.IVec2{X: 3})
	assert.Equal(t, internal.GridOf(dim(4, 4), []bool{
		false, false, false, true,
		false, false, false, false,
		false, false, false, false,
		false, false, false, false,
	}), dst)
}

func TestGrid_CopyIntoNeverClears(t *testing.T) {
	// Copying [1,0] into [0,1] yields [1,1]: the merge is a logical OR.
	src := internal.GridOf(dim(2, 1), []bool{true, false})
	dst := internal.GridOf(dim(2, 1), []bool{false, true})

	src.CopyInto(&dst, internal.IVec2{})
	assert.Equal(t, internal.GridOf(dim(2, 1), []bool{true, true}), dst)
}
