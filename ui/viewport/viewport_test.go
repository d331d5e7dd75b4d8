package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snake-sim/game/types"
)

func TestFitIdentity(t *testing.T) {
	v := Fit(types.Arena{Width: 200, Height: 100}, 200, 100, true, 1)

	x, y := v.Point(types.Origin)
	assert.Equal(t, int32(100), x)
	assert.Equal(t, int32(50), y)

	x, y = v.Point(types.Point{X: -100, Y: 50})
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y, "arena top maps to the screen top")

	x, y = v.Point(types.Point{X: 99, Y: -49})
	assert.Equal(t, int32(199), x)
	assert.Equal(t, int32(99), y)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 200, H: 100}, v.Bounds())
}

func TestFitUniformCenters(t *testing.T) {
	v := Fit(types.Arena{Width: 100, Height: 100}, 400, 200, true, 1)

	assert.Equal(t, Rect{X: 100, Y: 0, W: 200, H: 200}, v.Bounds())
	assert.Equal(t, Rect{X: 190, Y: 90, W: 20, H: 20}, v.Box(types.Origin, types.Size{W: 10, H: 10}))
}

func TestBoxNeverVanishes(t *testing.T) {
	v := Fit(types.Arena{Width: 1000, Height: 1000}, 10, 10, true, 1)
	r := v.Box(types.Origin, types.Size{W: 1, H: 1})
	assert.Equal(t, int32(1), r.W)
	assert.Equal(t, int32(1), r.H)
}

func TestFitAspectForTerminalCells(t *testing.T) {
	v := Fit(types.Arena{Width: 100, Height: 100}, 200, 50, true, 2)

	b := v.Bounds()
	assert.Equal(t, int32(100), b.W, "x doubled to make square cells look square")
	assert.Equal(t, int32(50), b.H)
	assert.Equal(t, int32(50), b.X)
}
