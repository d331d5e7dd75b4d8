package entity

import (
	"errors"

	"snake-sim/game/types"
)

// ErrNoActiveHead is the panic value raised when the chain has lost its head.
var ErrNoActiveHead = errors.New("snake has no active head")

// InitialLength is the size of a freshly spawned snake: a head plus one segment.
const InitialLength = 2

// Snake is the ordered segment chain. body[0] is the head, the last element
// is the tail. The slice never leaves the type; callers get copies.
type Snake struct {
	body     []types.Point
	lastTail types.Point
	scratch  []types.Point
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset truncates the chain back to a head and one segment, both at the origin.
func (s *Snake) Reset() {
	s.body = s.body[:0]
	for i := 0; i < InitialLength; i++ {
		s.body = append(s.body, types.Origin)
	}
	s.lastTail = types.Origin
}

// Positions returns a copy of the chain, head first.
func (s *Snake) Positions() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) GetHead() types.Point {
	if len(s.body) == 0 {
		panic(ErrNoActiveHead)
	}
	return s.body[0]
}

// LastTail is where the tail was before the most recent Advance.
func (s *Snake) LastTail() types.Point {
	return s.lastTail
}

// Advance moves the head to newHead. When moved or shrinkTail is set every other segment
// takes the position its predecessor held before this call. The shift reads
// from a snapshot so segments never pick up an already updated neighbour.
func (s *Snake) Advance(moved, shrinkTail bool, newHead types.Point) {
	if len(s.body) == 0 {
		panic(ErrNoActiveHead)
	}
	s.scratch = append(s.scratch[:0], s.body...)

	s.body[0] = newHead
	if moved || shrinkTail {
		copy(s.body[1:], s.scratch[:len(s.scratch)-1])
	}
	s.lastTail = s.scratch[len(s.scratch)-1]
}

// Grow appends one segment at the given position.
func (s *Snake) Grow(at types.Point) {
	s.body = append(s.body, at)
}
