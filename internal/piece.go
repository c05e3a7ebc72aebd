package internal

import "math/rand"

// Rotation is one of the four fixed orientations of a piece.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270

	numRotations = 4
)

// Next advances one step through the R0 → R90 → R180 → R270 → R0 cycle. Rotation is
// one-directional; a counter-clockwise turn is three forward steps.
func (r Rotation) Next() Rotation {
	return (r + 1) % numRotations
}

// Shape identifies one of the seven canonical tetromino shapes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ

	numShapes = 7
)

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?!?!"
	}
}

// shapeGrid builds a rotation grid from a visual pattern: rows are listed top row first
// with 'X' marking set cells, so the literal reads the way the piece looks on screen.
// Storage is bottom-up per Grid's layout.
func shapeGrid(rows ...string) Grid {
	w, h := len(rows[0]), len(rows)
	cells := make([]bool, 0, w*h)
	for y := h - 1; y >= 0; y-- {
		for _, c := range rows[y] {
			cells = append(cells, c == 'X')
		}
	}
	return GridOf(IDim{W: w, H: h}, cells)
}

// shapeRotations is the static catalog of every shape in every rotation, hand-authored
// as literal bit patterns rather than computed by rotating a base shape. A bigger table
// buys zero rotation-time work and no matrix math. The grids are shared and must never
// be written to; they are only copied into the field.
var shapeRotations = [numShapes][numRotations]Grid{
	ShapeI: {
		R0: shapeGrid(
			"XXXX"),
		R90: shapeGrid(
			"X",
			"X",
			"X",
			"X"),
		R180: shapeGrid(
			"XXXX"),
		R270: shapeGrid(
			"X",
			"X",
			"X",
			"X"),
	},
	ShapeJ: {
		R0: shapeGrid(
			"XXXX",
			"X..."),
		R90: shapeGrid(
			"X.",
			"X.",
			"X.",
			"XX"),
		R180: shapeGrid(
			"...X",
			"XXXX"),
		R270: shapeGrid(
			"XX",
			"X.",
			"X.",
			"X."),
	},
	ShapeL: {
		R0: shapeGrid(
			"XXXX",
			"...X"),
		R90: shapeGrid(
			".X",
			".X",
			".X",
			"XX"),
		R180: shapeGrid(
			"X...",
			"XXXX"),
		R270: shapeGrid(
			"XX",
			".X",
			".X",
			".X"),
	},
	ShapeO: {
		R0: shapeGrid(
			"XX",
			"XX"),
		R90: shapeGrid(
			"XX",
			"XX"),
		R180: shapeGrid(
			"XX",
			"XX"),
		R270: shapeGrid(
			"XX",
			"XX"),
	},
	ShapeS: {
		R0: shapeGrid(
			"XX.",
			".XX"),
		R90: shapeGrid(
			".X",
			"XX",
			"X."),
		R180: shapeGrid(
			".XX",
			"XX."),
		R270: shapeGrid(
			"X.",
			"XX",
			".X"),
	},
	ShapeT: {
		R0: shapeGrid(
			"XXX",
			".X."),
		R90: shapeGrid(
			"X.",
			"XX",
			"X."),
		R180: shapeGrid(
			".X.",
			"XXX"),
		R270: shapeGrid(
			".X",
			"XX",
			".X"),
	},
	ShapeZ: {
		R0: shapeGrid(
			".XX",
			"XX."),
		R90: shapeGrid(
			"X.",
			"XX",
			".X"),
		R180: shapeGrid(
			".XX",
			"XX."),
		R270: shapeGrid(
			"X.",
			"XX",
			".X"),
	},
}

// Piece is a movable shape with a pose: its shape and rotation select a grid from the
// static catalog, and (X, Y) is the offset of that grid's bottom-left cell within the
// field. A Piece places no constraint on its own position; legality is enforced by the
// state machine before any move is committed.
type Piece struct {
	shape    Shape
	rotation Rotation

	X, Y int
}

// NewPiece returns the given shape positioned at pos in rotation R0.
func NewPiece(shape Shape, pos IVec2) Piece {
	return Piece{shape: shape, X: pos.X, Y: pos.Y}
}

// RandomPiece draws a shape uniformly from the catalog and returns it positioned at pos
// in rotation R0. There is no bag or weighting; every spawn is an independent draw.
func RandomPiece(pos IVec2, rng *rand.Rand) Piece {
	return NewPiece(Shape(rng.Intn(numShapes)), pos)
}

// Shape returns this piece's shape tag, e.g. for per-shape coloring in a frontend.
func (p Piece) Shape() Shape { return p.shape }

// Rotation returns the piece's current rotation.
func (p Piece) Rotation() Rotation { return p.rotation }

// CurrentRotation returns the grid for the active rotation. All collision and merge
// operations against the field go through this grid.
func (p Piece) CurrentRotation() Grid {
	return shapeRotations[p.shape][p.rotation]
}

// PeekNextRotation returns the grid one rotation step ahead without mutating the piece.
// Used to test the legality of a pending rotate input before committing it.
func (p Piece) PeekNextRotation() Grid {
	return shapeRotations[p.shape][p.rotation.Next()]
}

// Rotate advances the piece one rotation step.
func (p *Piece) Rotate() {
	p.rotation = p.rotation.Next()
}
