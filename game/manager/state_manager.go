package manager

import (
	"io"
	"log"
	"time"

	"snake-sim/game/types"
)

// Reporter receives one call per spawned food item.
type Reporter interface {
	FoodSpawned(score types.Score)
}

// LogReporter writes the classic status line, "Score:<eaten> Food:<uneaten>".
type LogReporter struct {
	Logger *log.Logger
}

func NewLogReporter(w io.Writer) *LogReporter {
	return &LogReporter{Logger: log.New(w, "", 0)}
}

func (r *LogReporter) FoodSpawned(score types.Score) {
	r.Logger.Printf("Score:%d Food:%d", score.Eaten, score.Uneaten())
}

type nopReporter struct{}

func (nopReporter) FoodSpawned(types.Score) {}

// StateManager owns the score and the live food set and keeps the two in step.
type StateManager struct {
	foodManager *FoodManager
	reporter    Reporter
	score       types.Score
	resetScore  bool
}

func NewStateManager(foodManager *FoodManager, reporter Reporter, resetScore bool) *StateManager {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &StateManager{
		foodManager: foodManager,
		reporter:    reporter,
		resetScore:  resetScore,
	}
}

// Update ticks the spawn timer and accounts for a new item if one appeared.
func (sm *StateManager) Update(elapsed time.Duration) (Food, bool) {
	food, ok := sm.foodManager.Update(elapsed)
	if !ok {
		return Food{}, false
	}
	sm.score.Spawned++
	sm.reporter.FoodSpawned(sm.score)
	return food, true
}

// AddFood places an item by hand. It counts as a spawn like a timed one.
func (sm *StateManager) AddFood(pos types.Point) Food {
	food := sm.foodManager.PlaceFood(pos)
	sm.score.Spawned++
	sm.reporter.FoodSpawned(sm.score)
	return food
}

// EatFood removes a consumed item and counts it. Food that is already gone
// is not counted twice.
func (sm *StateManager) EatFood(food Food) bool {
	if !sm.foodManager.RemoveFood(food.ID) {
		return false
	}
	sm.score.Eaten++
	return true
}

func (sm *StateManager) GetFoodList() []Food {
	return sm.foodManager.GetFoodList()
}

func (sm *StateManager) GetScore() types.Score {
	return sm.score
}

// Reset clears the board. The score survives unless the round was configured
// to start from zero.
func (sm *StateManager) Reset() {
	sm.foodManager.Clear()
	if sm.resetScore {
		sm.score = types.Score{}
	}
}
