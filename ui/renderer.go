package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-sim/game"
	"snake-sim/game/types"
	"snake-sim/ui/viewport"
)

const (
	borderPadding = 10
	statsPanel    = 180
)

var (
	backgroundColor = rl.Color{R: 13, G: 128, B: 26, A: 255}
	headColor       = rl.Color{R: 0, G: 51, B: 0, A: 255}
	segmentColor    = rl.Color{R: 0, G: 77, B: 0, A: 255}
	foodColor       = rl.Color{R: 179, G: 26, B: 26, A: 255}
)

type Renderer struct {
	cfgHead types.Size
	cfgFood types.Size
	arena   types.Arena

	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	view         viewport.Viewport
}

func NewRenderer(arena types.Arena, head, food types.Size) *Renderer {
	r := &Renderer{
		arena:   arena,
		cfgHead: head,
		cfgFood: food,
	}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions refits the arena after the window changed size.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.gameWidth = max(r.screenWidth-statsPanel, 1)

	r.view = viewport.Fit(r.arena,
		max(r.gameWidth-borderPadding*2, 1),
		max(r.screenHeight-borderPadding*2, 1),
		true, 1)
}

func (r *Renderer) Draw(out game.TickOutcome, rounds int) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	bounds := r.view.Bounds()
	rl.DrawRectangle(borderPadding+bounds.X, borderPadding+bounds.Y, bounds.W, bounds.H, backgroundColor)

	for _, food := range out.Food {
		r.drawBox(r.view.Box(food.Pos, r.cfgFood), foodColor)
	}

	// Segments are drawn 2px smaller than the head, tail first so the head ends on top.
	segment := types.Size{W: max(r.cfgHead.W-2, 1), H: max(r.cfgHead.H-2, 1)}
	for i := len(out.Segments) - 1; i > 0; i-- {
		r.drawBox(r.view.Box(out.Segments[i], segment), segmentColor)
	}
	if len(out.Segments) > 0 {
		r.drawBox(r.view.Box(out.Segments[0], r.cfgHead), headColor)
	}

	r.drawStatsPanel(out, rounds)
	rl.EndDrawing()
}

func (r *Renderer) drawBox(box viewport.Rect, color rl.Color) {
	rl.DrawRectangle(borderPadding+box.X, borderPadding+box.Y, box.W, box.H, color)
}

func (r *Renderer) drawStatsPanel(out game.TickOutcome, rounds int) {
	statsX := r.gameWidth + 5
	statsY := int32(10)
	fontSize := int32(20)
	lineHeight := fontSize + 6

	rl.DrawRectangle(r.gameWidth, 0, r.screenWidth-r.gameWidth, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Score: %d", out.Score.Eaten),
		fmt.Sprintf("Food: %d", out.Score.Uneaten()),
		fmt.Sprintf("Length: %d", len(out.Segments)),
		fmt.Sprintf("Round: %d", rounds+1),
		fmt.Sprintf("Tick: %d", out.Tick),
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	help := "WASD move, Space reset, Q quit"
	rl.DrawText(help, statsX, r.screenHeight-fontSize-5, fontSize/2, rl.LightGray)
}
