package manager

import (
	"cmp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"snake-sim/game/types"
)

// Food is a collectible on the board.
type Food struct {
	ID  uuid.UUID
	Pos types.Point
	// Seq orders food by spawn time for stable iteration.
	Seq uint64
}

type FoodManager struct {
	arena    types.Arena
	interval time.Duration
	rng      *rand.Rand

	foods      map[uuid.UUID]Food
	spawnTimer time.Duration
	nextSeq    uint64
}

func NewFoodManager(arena types.Arena, interval time.Duration, seed uint64) *FoodManager {
	return &FoodManager{
		arena:    arena,
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
		foods:    make(map[uuid.UUID]Food),
	}
}

// Update advances the repeating spawn timer by elapsed. When the timer runs
// out one food item is generated and returned; the overshoot carries into the
// next period. At most one item spawns per call.
func (fm *FoodManager) Update(elapsed time.Duration) (Food, bool) {
	if elapsed > 0 {
		fm.spawnTimer += elapsed
	}
	if fm.spawnTimer < fm.interval {
		return Food{}, false
	}
	fm.spawnTimer %= fm.interval

	food := fm.GenerateFood()
	fm.AddFood(food)
	return food, true
}

// GenerateFood draws a position uniformly over the arena: x from [0, width)
// and y from [0, height), each shifted back by the half extent.
func (fm *FoodManager) GenerateFood() Food {
	pos := types.Point{
		X: float64(fm.rng.Intn(fm.arena.Width) - fm.arena.Width/2),
		Y: float64(fm.rng.Intn(fm.arena.Height) - fm.arena.Height/2),
	}
	return fm.newFood(pos)
}

// PlaceFood puts an item at a fixed position without touching the timer.
func (fm *FoodManager) PlaceFood(pos types.Point) Food {
	food := fm.newFood(pos)
	fm.AddFood(food)
	return food
}

func (fm *FoodManager) newFood(pos types.Point) Food {
	food := Food{
		ID:  uuid.Must(uuid.NewRandomFromReader(fm.rng)),
		Pos: pos,
		Seq: fm.nextSeq,
	}
	fm.nextSeq++
	return food
}

func (fm *FoodManager) AddFood(food Food) {
	fm.foods[food.ID] = food
}

// RemoveFood reports whether the item was still on the board.
func (fm *FoodManager) RemoveFood(id uuid.UUID) bool {
	if _, ok := fm.foods[id]; !ok {
		return false
	}
	delete(fm.foods, id)
	return true
}

// GetFoodList returns the live food ordered by spawn sequence.
func (fm *FoodManager) GetFoodList() []Food {
	list := maps.Values(fm.foods)
	slices.SortFunc(list, func(a, b Food) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return list
}

func (fm *FoodManager) Len() int {
	return len(fm.foods)
}

// Clear drops every food item and restarts the spawn timer.
func (fm *FoodManager) Clear() {
	maps.Clear(fm.foods)
	fm.spawnTimer = 0
}
