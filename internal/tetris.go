package internal

import (
	"math/rand"
	"time"
)

// Fixed game constants. These form an implicit contract with every frontend and are not
// configurable.
const (
	FieldWidth  = 10 // FieldWidth is the playing field width in cells.
	FieldHeight = 20 // FieldHeight is the playing field height in cells.

	// BaseScoreUnit is the minimum score for removing a single field cell.
	BaseScoreUnit = 1000
)

// pieceSpawn is where every new piece appears, as the bottom-left anchor of its grid.
var pieceSpawn = IVec2{X: 5, Y: 19}

// KeyState is the latched input snapshot consumed by Update. The machine never clears
// it: the documented usage is set input, tick, reset input to all-false, so each tick
// sees at most one externally-applied snapshot.
type KeyState struct {
	Left   bool
	Right  bool
	Rotate bool
}

// GameState holds everything a running game mutates: the field, the active and queued
// piece, the latched input, the score, and the random source pieces are drawn from.
// Frontends read it through the accessors below; all mutation happens inside Update.
type GameState struct {
	piece     Piece
	nextPiece Piece
	field     Grid
	keys      KeyState
	score     int
	rng       *rand.Rand
}

// Field returns the persistent playing grid, without the active piece merged in.
func (s *GameState) Field() Grid { return s.field }

// Piece returns a copy of the active piece.
func (s *GameState) Piece() Piece { return s.piece }

// NextPiece returns a copy of the queued piece, e.g. for preview rendering.
func (s *GameState) NextPiece() Piece { return s.nextPiece }

// Score returns the cumulative score. It never decreases.
func (s *GameState) Score() int { return s.score }

// respawnPiece swaps the queued piece in as the active piece and draws a fresh one.
func (s *GameState) respawnPiece() {
	s.piece = s.nextPiece
	s.nextPiece = RandomPiece(pieceSpawn, s.rng)
}

// removeCompleteRows zeroes every row whose cells are all set and banks the score. Rows
// above a cleared row stay where they are; the stack does not collapse. This mirrors the
// behavior this engine was ported from, quirk included; see DESIGN.md.
//
// Clearing n rows in one pass scores n*n * FieldWidth * BaseScoreUnit: the base row
// score doubles for each additional simultaneous row.
func (s *GameState) removeCompleteRows() {
	dims := s.field.Dims()
	cleared := 0
	for y := 0; y < dims.H; y++ {
		full := true
		for x := 0; x < dims.W; x++ {
			if !s.field.At(x, y) {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		for x := 0; x < dims.W; x++ {
			s.field.Set(x, y, false)
		}
		cleared++
	}
	s.score += cleared * cleared * dims.W * BaseScoreUnit
}

// Game is a two-state machine: running, or finished. The finished state is terminal and
// carries no game data, which the nil encoding of state captures exactly; there is no
// way back to running short of constructing a fresh Game.
type Game struct {
	state *GameState // state is nil once the game has finished.
}

// NewGame returns a running game seeded from the clock, with the active and queued
// pieces already rolled.
func NewGame() *Game {
	return NewGameWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGameWithRand is NewGame with an injected random source, so tests and replays can
// supply a deterministic sequence.
func NewGameWithRand(rng *rand.Rand) *Game {
	state := &GameState{
		field: NewGrid(IDim{W: FieldWidth, H: FieldHeight}),
		rng:   rng,
	}
	state.piece = RandomPiece(pieceSpawn, rng)
	state.nextPiece = RandomPiece(pieceSpawn, rng)
	return &Game{state: state}
}

// State returns the running game state for reading, or nil once the game has finished.
func (g *Game) State() *GameState { return g.state }

// Finished reports whether the game has reached its terminal state.
func (g *Game) Finished() bool { return g.state == nil }

// SetKeyState latches the input snapshot considered by every subsequent Update until the
// next call. A no-op once the game has finished.
func (g *Game) SetKeyState(keys KeyState) {
	if g.state == nil {
		return
	}
	g.state.keys = keys
}

// Update advances the game one tick: apply a pending rotation if legal, apply one cell
// of horizontal movement if legal, then drop the piece one row. A piece that cannot drop
// locks into the field, complete rows are scored and cleared, and the queued piece
// respawns; if the respawned piece immediately collides with the field the game is lost.
// A no-op once the game has finished.
//
// Call Update at a frequency matching the desired game speed; calling it more often
// makes the game faster and harder.
func (g *Game) Update() {
	s := g.state
	if s == nil {
		return
	}

	// Apply the rotation only when the rotated grid fits at the current position.
	// An illegal rotate input is dropped; there is no wall-kick search.
	if s.keys.Rotate {
		if !s.piece.PeekNextRotation().Collides(s.field, IVec2{X: s.piece.X, Y: s.piece.Y}) {
			s.piece.Rotate()
		}
	}

	// Apply any left/right move before lowering the piece. Opposing inputs net out,
	// and a move is dropped if it would leave the field or create a collision.
	switch {
	case s.keys.Left == s.keys.Right:
	case s.keys.Left:
		if s.piece.X > 0 &&
			!s.piece.CurrentRotation().Collides(s.field, IVec2{X: s.piece.X - 1, Y: s.piece.Y}) {
			s.piece.X--
		}
	case s.keys.Right:
		if s.piece.X+s.piece.CurrentRotation().Dims().W < FieldWidth &&
			!s.piece.CurrentRotation().Collides(s.field, IVec2{X: s.piece.X + 1, Y: s.piece.Y}) {
			s.piece.X++
		}
	}

	if s.piece.Y == 0 ||
		s.piece.CurrentRotation().Collides(s.field, IVec2{X: s.piece.X, Y: s.piece.Y - 1}) {
		// The piece can drop no further: lock it into the field and respawn.
		s.piece.CurrentRotation().CopyInto(&s.field, IVec2{X: s.piece.X, Y: s.piece.Y})
		s.removeCompleteRows()
		s.respawnPiece()

		// A spawned piece that immediately collides with the field means the player
		// has lost.
		if s.piece.CurrentRotation().Collides(s.field, IVec2{X: s.piece.X, Y: s.piece.Y}) {
			g.state = nil
		}
	} else {
		s.piece.Y--
	}
}
