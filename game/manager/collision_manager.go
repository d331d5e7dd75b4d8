package manager

import (
	"math"

	"snake-sim/game/types"
)

type CollisionManager struct {
	head types.Size
	food types.Size
}

func NewCollisionManager(head, food types.Size) *CollisionManager {
	return &CollisionManager{
		head: head,
		food: food,
	}
}

// Range is the largest per-axis distance between centers that still counts
// as a hit: the sum of the two half extents, in whole pixels.
func (cm *CollisionManager) Range() (int, int) {
	return (cm.head.W + cm.food.W) / 2, (cm.head.H + cm.food.H) / 2
}

// IsFoodCollision checks whether the head box touches or overlaps a food box.
// Edge contact counts.
func (cm *CollisionManager) IsFoodCollision(head, food types.Point) bool {
	rangeX, rangeY := cm.Range()
	return int(math.Abs(food.X-head.X)) <= rangeX &&
		int(math.Abs(food.Y-head.Y)) <= rangeY
}

// CheckFoodCollisions returns every food item the head is touching, in the
// order they were given.
func (cm *CollisionManager) CheckFoodCollisions(head types.Point, foodList []Food) []Food {
	var hits []Food
	for _, food := range foodList {
		if cm.IsFoodCollision(head, food.Pos) {
			hits = append(hits, food)
		}
	}
	return hits
}
