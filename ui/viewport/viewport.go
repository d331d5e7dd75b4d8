// Package viewport maps arena space (origin at center, y up) onto a screen
// grid (origin top-left, y down).
package viewport

import (
	"math"

	"snake-sim/game/types"
)

// Rect is a screen rectangle in whatever unit the caller draws with
// (pixels for raylib, cells for a terminal).
type Rect struct {
	X, Y, W, H int32
}

type Viewport struct {
	arena   types.Arena
	scaleX  float64
	scaleY  float64
	offsetX int32
	offsetY int32
}

// Fit scales the arena into a screen area of width x height, keeping its
// aspect ratio when uniform is set. aspect stretches x for targets whose
// cells are not square (terminal cells are roughly twice as tall as wide).
func Fit(arena types.Arena, width, height int32, uniform bool, aspect float64) Viewport {
	if aspect <= 0 {
		aspect = 1
	}
	sx := float64(width) / (float64(arena.Width) * aspect)
	sy := float64(height) / float64(arena.Height)
	if uniform {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}
	sx *= aspect
	return Viewport{
		arena:   arena,
		scaleX:  sx,
		scaleY:  sy,
		offsetX: (width - int32(float64(arena.Width)*sx)) / 2,
		offsetY: (height - int32(float64(arena.Height)*sy)) / 2,
	}
}

// Point returns the screen position of an arena point.
func (v Viewport) Point(p types.Point) (int32, int32) {
	x := (p.X + float64(v.arena.Width)/2) * v.scaleX
	y := (float64(v.arena.Height)/2 - p.Y) * v.scaleY
	return v.offsetX + int32(math.Floor(x)), v.offsetY + int32(math.Floor(y))
}

// Box returns the screen rectangle of a sprite of the given size centered on p.
// Width and height are at least one unit so small sprites stay visible.
func (v Viewport) Box(p types.Point, size types.Size) Rect {
	cx, cy := v.Point(p)
	w := max(int32(math.Round(float64(size.W)*v.scaleX)), 1)
	h := max(int32(math.Round(float64(size.H)*v.scaleY)), 1)
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Bounds is the screen rectangle covered by the arena.
func (v Viewport) Bounds() Rect {
	return Rect{
		X: v.offsetX,
		Y: v.offsetY,
		W: int32(float64(v.arena.Width) * v.scaleX),
		H: int32(float64(v.arena.Height) * v.scaleY),
	}
}
