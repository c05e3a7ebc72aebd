package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// drawState builds a small state for projection tests: a 3x2 field with its bottom-right
// cell set and an O piece anchored at the bottom-left.
func drawState() *GameState {
	state := &GameState{
		field: NewGrid(IDim{W: 3, H: 2}),
		piece: NewPiece(ShapeO, IVec2{X: 0, Y: 0}),
	}
	state.field.Set(2, 0, true)
	return state
}

func TestGameState_Draw(t *testing.T) {
	state := drawState()

	got := make(map[IVec2]bool)
	calls := 0
	state.Draw(func(x, y int, set bool) {
		calls++
		got[IVec2{X: x, Y: y}] = set
	}, IVec2{}, IVec2{X: 1, Y: 1})

	// One call per cell at unit scale.
	assert.Equal(t, 3*2, calls)

	// y is inverted for the canvas: field (2,0) lands on canvas row 1.
	assert.True(t, got[IVec2{X: 2, Y: 1}])
	assert.False(t, got[IVec2{X: 2, Y: 0}])

	// The O piece at (0,0) covers the 2x2 bottom-left block, so both canvas rows of
	// columns 0 and 1 are set.
	assert.True(t, got[IVec2{X: 0, Y: 0}])
	assert.True(t, got[IVec2{X: 1, Y: 0}])
	assert.True(t, got[IVec2{X: 0, Y: 1}])
	assert.True(t, got[IVec2{X: 1, Y: 1}])
}

func TestGameState_DrawScaledWithOffset(t *testing.T) {
	state := drawState()
	offset := IVec2{X: 4, Y: 5}
	scale := IVec2{X: 2, Y: 3}

	got := make(map[IVec2]bool)
	calls := 0
	state.Draw(func(x, y int, set bool) {
		calls++
		got[IVec2{X: x, Y: y}] = set
	}, offset, scale)

	// Each of the 3x2 cells blits a full scale.X by scale.Y block.
	assert.Equal(t, 3*2*scale.X*scale.Y, calls)

	// Field cell (2,0) maps to canvas cell (2,1), whose pixel block starts at
	// (2*2+4, 1*3+5) and covers every pixel within the block.
	for dx := 0; dx < scale.X; dx++ {
		for dy := 0; dy < scale.Y; dy++ {
			assert.True(t, got[IVec2{X: 8 + dx, Y: 8 + dy}])
		}
	}

	// Field cell (2,1) is empty and maps to the block starting at (8,5).
	for dx := 0; dx < scale.X; dx++ {
		for dy := 0; dy < scale.Y; dy++ {
			assert.False(t, got[IVec2{X: 8 + dx, Y: 5 + dy}])
		}
	}
}
