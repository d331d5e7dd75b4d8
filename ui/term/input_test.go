package term

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"snake-sim/game/types"
)

func TestKeyStateHoldWindow(t *testing.T) {
	k := NewKeyState(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	assert.True(t, k.Press('d', t0))
	assert.True(t, k.Press('w', t0.Add(50*time.Millisecond)))

	assert.Equal(t, types.IntentRight|types.IntentUp, k.Intents(t0.Add(100*time.Millisecond)))
	assert.Equal(t, types.IntentUp, k.Intents(t0.Add(120*time.Millisecond)), "right expired")
	assert.Equal(t, types.IntentNone, k.Intents(t0.Add(time.Second)))
}

func TestKeyStateReset(t *testing.T) {
	k := NewKeyState(0)
	assert.False(t, k.TakeReset())

	assert.True(t, k.Press(' ', time.Now()))
	assert.True(t, k.TakeReset())
	assert.False(t, k.TakeReset(), "reset is consumed once")
}

func TestKeyStateUnknownKey(t *testing.T) {
	k := NewKeyState(0)
	now := time.Now()
	assert.False(t, k.Press('x', now))
	assert.Equal(t, types.IntentNone, k.Intents(now))
}

func TestKeyStateViKeys(t *testing.T) {
	k := NewKeyState(0)
	now := time.Now()
	for _, r := range "hjkl" {
		k.Press(r, now)
	}
	assert.Equal(t, types.IntentLeft|types.IntentRight|types.IntentDown|types.IntentUp, k.Intents(now))
}
