package game

import "snake-sim/game/types"

type RequestKind int

const (
	GrowthRequest RequestKind = iota
	ResetRequest
)

func (k RequestKind) String() string {
	switch k {
	case GrowthRequest:
		return "growth"
	case ResetRequest:
		return "reset"
	default:
		return "unknown"
	}
}

// Request is a signal raised during a tick and consumed before it ends.
type Request struct {
	Kind RequestKind
	// At is where a growth request places the new segment.
	At types.Point
}

// requestQueue is drained in FIFO order. The backing array is reused across ticks.
type requestQueue struct {
	items []Request
}

func (q *requestQueue) push(r Request) {
	q.items = append(q.items, r)
}

// drain hands every queued request of kind to fn in arrival order and keeps the rest.
func (q *requestQueue) drain(kind RequestKind, fn func(Request)) int {
	n := 0
	kept := q.items[:0]
	for _, r := range q.items {
		if r.Kind != kind {
			kept = append(kept, r)
			continue
		}
		fn(r)
		n++
	}
	clear(q.items[len(kept):])
	q.items = kept
	return n
}
