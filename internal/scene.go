package internal

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Below are some constant knobs for the windowed frontend.

const CellSize = 24      // CellSize is the square size of each field cell in pixels.
const FramesPerTick = 15 // FramesPerTick is how many 60Hz frames pass between core ticks; 15 gives 4 ticks per second.
const SidebarWidth = 120 // SidebarWidth is the width in pixels of the score / next-piece column.

// ScreenDims is the logical screen size of the windowed frontend.
var ScreenDims = IDim{W: FieldWidth*CellSize + SidebarWidth, H: FieldHeight * CellSize}

// shapeColors colors the active and queued piece by shape.
var shapeColors = [numShapes]color.RGBA{
	ShapeI: {R: 0x4d, G: 0xd9, B: 0xe8, A: 0xff},
	ShapeJ: {R: 0x4d, G: 0x6c, B: 0xe8, A: 0xff},
	ShapeL: {R: 0xe8, G: 0xa3, B: 0x4d, A: 0xff},
	ShapeO: {R: 0xe8, G: 0xd9, B: 0x4d, A: 0xff},
	ShapeS: {R: 0x6c, G: 0xe8, B: 0x4d, A: 0xff},
	ShapeT: {R: 0xb0, G: 0x4d, B: 0xe8, A: 0xff},
	ShapeZ: {R: 0xe8, G: 0x4d, B: 0x5a, A: 0xff},
}

// fieldColor colors cells already locked into the field.
var fieldColor = color.RGBA{R: 0xb8, G: 0xb8, B: 0xc0, A: 0xff}

// TetrisScene drives a Game from the keyboard and renders it every frame. Input is
// latched across frames and handed to the core once per fixed-cadence tick, then reset,
// so the state machine sees exactly one snapshot per tick regardless of the frame rate.
type TetrisScene struct {
	game *Game

	latched KeyState     // latched accumulates input between core ticks.
	keys    []ebiten.Key // keys is the set of keys currently pressed.
	frames  int          // frames since the last core tick.
	score   int          // score as of the last running tick; survives the finish.

	board IRect         // board is the region of the screen the field is drawn into.
	cell  *ebiten.Image // cell is a white tile tinted per draw.
}

// NewTetrisScene returns a scene with a freshly constructed game.
func NewTetrisScene() *TetrisScene {
	cell := ebiten.NewImage(CellSize-1, CellSize-1) // 1px gap keeps the cell grid visible
	cell.Fill(color.White)
	return &TetrisScene{
		game:  NewGame(),
		board: IRect{X: 0, Y: 0, W: FieldWidth * CellSize, H: FieldHeight * CellSize},
		cell:  cell,
	}
}

// Update latches this frame's input and, every FramesPerTick frames, advances the core
// one tick. Once the game has finished, R starts a fresh one.
func (s *TetrisScene) Update() error {
	s.handleInput()

	if s.game.Finished() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			s.game = NewGame()
			s.latched = KeyState{}
			s.frames = 0
			s.score = 0
		}
		return nil
	}

	s.frames++
	if s.frames >= FramesPerTick {
		s.frames = 0
		s.game.SetKeyState(s.latched)
		s.game.Update()
		s.game.SetKeyState(KeyState{})
		s.latched = KeyState{}
		if state := s.game.State(); state != nil {
			s.score = state.Score()
		}
	}
	return nil
}

// handleInput folds the currently pressed keys into the latched snapshot. Rotate only
// latches on the initial press so holding space doesn't spin the piece every tick.
func (s *TetrisScene) handleInput() {
	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	for _, key := range s.keys {
		switch key {
		case ebiten.KeyA, ebiten.KeyArrowLeft:
			s.latched.Left = true
		case ebiten.KeyD, ebiten.KeyArrowRight:
			s.latched.Right = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.latched.Rotate = true
	}
}

// Draw renders the field, the active piece, and the sidebar to the provided image. The
// core stores (0,0) at the bottom-left, so cell y is inverted here for the screen.
func (s *TetrisScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x16, G: 0x16, B: 0x1c, A: 0xff})
	screen.SubImage(s.board.Rectangle()).(*ebiten.Image).Fill(color.RGBA{R: 0x22, G: 0x22, B: 0x2a, A: 0xff})

	state := s.game.State()
	if state == nil {
		msg := fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress R to restart", s.score)
		ebitenutil.DebugPrintAt(screen, msg, s.board.W/2-40, s.board.H/2-20)
		s.drawSidebar(screen, nil)
		return
	}

	field := state.Field()
	dims := field.Dims()
	for x := 0; x < dims.W; x++ {
		for y := 0; y < dims.H; y++ {
			if field.At(x, y) {
				s.drawCell(screen, x, y, fieldColor)
			}
		}
	}

	piece := state.Piece()
	pieceGrid := piece.CurrentRotation()
	pieceDims := pieceGrid.Dims()
	for x := 0; x < pieceDims.W; x++ {
		for y := 0; y < pieceDims.H; y++ {
			if piece.Y+y >= FieldHeight { // a fresh spawn can poke above the field
				continue
			}
			if pieceGrid.At(x, y) {
				s.drawCell(screen, piece.X+x, piece.Y+y, shapeColors[piece.Shape()])
			}
		}
	}

	s.drawSidebar(screen, state)
}

// drawCell draws one tinted cell at field coordinates (x, y), inverting y for the
// screen.
func (s *TetrisScene) drawCell(screen *ebiten.Image, x, y int, c color.RGBA) {
	px := IVec2{X: x, Y: FieldHeight - 1 - y}.Scale(CellSize).Add(s.board.IVec2())
	opts := ebiten.DrawImageOptions{}
	opts.ColorScale.Scale(float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, 1)
	opts.GeoM.Translate(float64(px.X), float64(px.Y))
	screen.DrawImage(s.cell, &opts)
}

// drawSidebar draws the score, the FPS, and the next-piece preview. state may be nil
// once the game has finished.
func (s *TetrisScene) drawSidebar(screen *ebiten.Image, state *GameState) {
	left := s.board.W + 10
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.score), left, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), left, ScreenDims.H-20)

	if state == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, "Next:", left, 40)

	next := state.NextPiece()
	nextGrid := next.CurrentRotation()
	nextDims := nextGrid.Dims()
	origin := IVec2{X: left, Y: 60 + nextDims.H*CellSize}
	for x := 0; x < nextDims.W; x++ {
		for y := 0; y < nextDims.H; y++ {
			if !nextGrid.At(x, y) {
				continue
			}
			c := shapeColors[next.Shape()]
			opts := ebiten.DrawImageOptions{}
			opts.ColorScale.Scale(float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, 1)
			opts.GeoM.Translate(
				float64(origin.X+x*CellSize),
				float64(origin.Y-(y+1)*CellSize),
			)
			screen.DrawImage(s.cell, &opts)
		}
	}
}

// Layout reports the scene's fixed logical screen size.
func (s *TetrisScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenDims.W, ScreenDims.H
}
