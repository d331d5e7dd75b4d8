package manager

import "snake-sim/game/types"

type MovementManager struct {
	arena types.Arena
	speed float64
}

func NewMovementManager(arena types.Arena, speed float64) *MovementManager {
	return &MovementManager{
		arena: arena,
		speed: speed,
	}
}

// Advance applies every held direction to head independently. A move that
// would leave the arena on its axis is dropped without affecting the other
// axis, so two perpendicular intents give a diagonal step.
func (mm *MovementManager) Advance(head types.Point, intents types.Intent) (types.Point, bool) {
	moved := false
	halfW := mm.arena.HalfWidth()
	halfH := mm.arena.HalfHeight()

	if intents.Has(types.IntentLeft) && head.X-mm.speed >= -halfW {
		head.X -= mm.speed
		moved = true
	}
	if intents.Has(types.IntentRight) && head.X+mm.speed <= halfW {
		head.X += mm.speed
		moved = true
	}
	if intents.Has(types.IntentDown) && head.Y-mm.speed >= -halfH {
		head.Y -= mm.speed
		moved = true
	}
	if intents.Has(types.IntentUp) && head.Y+mm.speed <= halfH {
		head.Y += mm.speed
		moved = true
	}

	return head, moved
}
