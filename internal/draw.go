package internal

// Draw projects the field plus the active piece through blit, calling it once per scaled
// pixel with that pixel's on/off state. The projection inverts y, so a top-down display
// surface receives the field the right way up; offset shifts the whole projection in
// pixel space and scale stretches each cell to scale.X by scale.Y pixels.
//
// Draw is a convenience for per-pixel surfaces (a terminal canvas, a dot-matrix panel).
// Frontends are free to bypass it and read Field and Piece directly.
func (s *GameState) Draw(blit func(x, y int, set bool), offset, scale IVec2) {
	dims := s.field.Dims()
	pieceGrid := s.piece.CurrentRotation()
	pieceDims := pieceGrid.Dims()

	for y := dims.H - 1; y >= 0; y-- {
		for x := 0; x < dims.W; x++ {
			px, py := x-s.piece.X, y-s.piece.Y
			inPiece := px >= 0 && px < pieceDims.W && py >= 0 && py < pieceDims.H &&
				pieceGrid.At(px, py)
			set := s.field.At(x, y) || inPiece

			canvasX := x*scale.X + offset.X
			canvasY := (dims.H-1-y)*scale.Y + offset.Y
			for dx := 0; dx < scale.X; dx++ {
				for dy := 0; dy < scale.Y; dy++ {
					blit(canvasX+dx, canvasY+dy, set)
				}
			}
		}
	}
}
