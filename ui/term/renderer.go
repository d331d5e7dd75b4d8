// Package term draws the game into a tcell screen.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-sim/game"
	"snake-sim/game/types"
	"snake-sim/ui/viewport"
)

// cellAspect compensates for terminal cells being about twice as tall as wide.
const cellAspect = 2.0

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleSegment = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type Renderer struct {
	screen tcell.Screen
	arena  types.Arena
	head   types.Size
	food   types.Size
	view   viewport.Viewport
	width  int
	height int
}

func NewRenderer(screen tcell.Screen, arena types.Arena, head, food types.Size) *Renderer {
	r := &Renderer{
		screen: screen,
		arena:  arena,
		head:   head,
		food:   food,
	}
	r.Resize()
	return r
}

// Resize refits the arena to the screen, leaving a border and a status line.
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.view = viewport.Fit(r.arena, int32(max(r.width-2, 1)), int32(max(r.height-3, 1)), true, cellAspect)
}

func (r *Renderer) Draw(out game.TickOutcome, rounds int) {
	r.screen.Clear()

	b := r.view.Bounds()
	r.drawFrame(int(b.X), int(b.Y), int(b.X+b.W)+1, int(b.Y+b.H)+1)

	for _, food := range out.Food {
		r.fill(r.view.Box(food.Pos, r.food), '●', styleFood)
	}
	for i := len(out.Segments) - 1; i > 0; i-- {
		r.fill(r.view.Box(out.Segments[i], r.head), '▒', styleSegment)
	}
	if len(out.Segments) > 0 {
		r.fill(r.view.Box(out.Segments[0], r.head), '█', styleHead)
	}

	status := fmt.Sprintf("Score:%d Food:%d Length:%d Round:%d  [wasd] move [space] reset [q] quit",
		out.Score.Eaten, out.Score.Uneaten(), len(out.Segments), rounds+1)
	r.text(0, r.height-1, status, styleStatus)

	r.screen.Show()
}

// fill paints a box shifted by one cell for the frame.
func (r *Renderer) fill(box viewport.Rect, ch rune, style tcell.Style) {
	for y := box.Y; y < box.Y+box.H; y++ {
		for x := box.X; x < box.X+box.W; x++ {
			r.screen.SetContent(int(x)+1, int(y)+1, ch, nil, style)
		}
	}
}

func (r *Renderer) drawFrame(x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, styleBorder)
		r.screen.SetContent(x, y1, '─', nil, styleBorder)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, styleBorder)
		r.screen.SetContent(x1, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(x0, y0, '┌', nil, styleBorder)
	r.screen.SetContent(x1, y0, '┐', nil, styleBorder)
	r.screen.SetContent(x0, y1, '└', nil, styleBorder)
	r.screen.SetContent(x1, y1, '┘', nil, styleBorder)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
