package types

import "strings"

// Point is a position in arena space. The origin is the arena center and y grows upwards.
type Point struct {
	X, Y float64
}

// Origin is where every new snake starts.
var Origin = Point{}

// Size is the width and height of a sprite in whole pixels
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Arena represents the playfield dimensions
type Arena struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HalfWidth and HalfHeight use integer division, matching how food is centered.
func (a Arena) HalfWidth() float64 {
	return float64(a.Width / 2)
}

func (a Arena) HalfHeight() float64 {
	return float64(a.Height / 2)
}

// Contains reports whether p lies inside the closed arena bounds.
func (a Arena) Contains(p Point) bool {
	return p.X >= -a.HalfWidth() && p.X <= a.HalfWidth() &&
		p.Y >= -a.HalfHeight() && p.Y <= a.HalfHeight()
}

// Intent is a set of directional inputs held during a tick.
type Intent uint8

const (
	IntentLeft Intent = 1 << iota
	IntentRight
	IntentDown
	IntentUp

	IntentNone Intent = 0
	intentAll         = IntentLeft | IntentRight | IntentDown | IntentUp
)

// Has reports whether every bit of o is set in i.
func (i Intent) Has(o Intent) bool {
	return o != IntentNone && i&o == o
}

// Known strips bits that do not name a direction.
func (i Intent) Known() Intent {
	return i & intentAll
}

func (i Intent) String() string {
	if i.Known() == IntentNone {
		return "none"
	}
	var parts []string
	for _, d := range []struct {
		bit  Intent
		name string
	}{{IntentLeft, "left"}, {IntentRight, "right"}, {IntentDown, "down"}, {IntentUp, "up"}} {
		if i.Has(d.bit) {
			parts = append(parts, d.name)
		}
	}
	return strings.Join(parts, "+")
}

// Score counts eaten and spawned food. Eaten never exceeds Spawned.
type Score struct {
	Eaten   int `json:"eaten"`
	Spawned int `json:"spawned"`
}

// Uneaten is the number of food items currently waiting on the board.
func (s Score) Uneaten() int {
	return s.Spawned - s.Eaten
}
