package internal

import "image"

// IVec2 is integer 2D-coordinates. The game works entirely in cell space, so only
// integer geometry is needed.
type IVec2 struct{ X, Y int }

func (v IVec2) Add(o IVec2) IVec2 { return IVec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v IVec2) Scale(a int) IVec2 { return IVec2{X: v.X * a, Y: v.Y * a} }

// IDim is integer width and height.
type IDim struct{ W, H int }

// IRect is an integer rectangle.
type IRect struct {
	X, Y, W, H int
}

// IVec2 returns the upper-left coordinate of this rectangle.
func (r IRect) IVec2() IVec2 { return IVec2{X: r.X, Y: r.Y} }

func (r IRect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
