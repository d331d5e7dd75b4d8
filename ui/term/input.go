package term

import (
	"time"

	"snake-sim/game/types"
)

// DefaultHold is how long a key counts as held after its last press event.
// Terminals only report presses and auto-repeat, never releases.
const DefaultHold = 150 * time.Millisecond

// KeyState turns a stream of key presses into held directional intents.
type KeyState struct {
	hold     time.Duration
	lastSeen map[types.Intent]time.Time
	reset    bool
}

func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyState{
		hold:     hold,
		lastSeen: make(map[types.Intent]time.Time),
	}
}

// Press records a key press at now. It reports false for keys it does not map.
func (k *KeyState) Press(r rune, now time.Time) bool {
	switch r {
	case 'a', 'A', 'h':
		k.lastSeen[types.IntentLeft] = now
	case 'd', 'D', 'l':
		k.lastSeen[types.IntentRight] = now
	case 's', 'S', 'j':
		k.lastSeen[types.IntentDown] = now
	case 'w', 'W', 'k':
		k.lastSeen[types.IntentUp] = now
	case ' ':
		k.reset = true
	default:
		return false
	}
	return true
}

// Intents returns the directions pressed within the hold window.
func (k *KeyState) Intents(now time.Time) types.Intent {
	var intents types.Intent
	for dir, seen := range k.lastSeen {
		if now.Sub(seen) <= k.hold {
			intents |= dir
		}
	}
	return intents
}

// TakeReset reports a pending reset press and clears it.
func (k *KeyState) TakeReset() bool {
	r := k.reset
	k.reset = false
	return r
}
