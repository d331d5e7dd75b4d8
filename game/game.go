package game

import (
	"fmt"
	"log"
	"os"
	"time"

	"snake-sim/game/config"
	"snake-sim/game/entity"
	"snake-sim/game/manager"
	"snake-sim/game/types"
)

// TickOutcome is a frozen view of the simulation after a tick. Every slice is
// a copy, so hosts may hold on to it while the next tick runs.
type TickOutcome struct {
	Tick     uint64
	Segments []types.Point
	Food     []manager.Food
	Score    types.Score
	// Spawned is set when the spawn timer produced an item this tick.
	Spawned *manager.Food
	Eaten   []manager.Food
	Reset   bool
}

// Head is the first segment of the outcome.
func (o TickOutcome) Head() types.Point {
	if len(o.Segments) == 0 {
		return types.Origin
	}
	return o.Segments[0]
}

// FoodPositions returns just the positions of the live food.
func (o TickOutcome) FoodPositions() []types.Point {
	out := make([]types.Point, len(o.Food))
	for i, f := range o.Food {
		out[i] = f.Pos
	}
	return out
}

type Option func(*Game)

// WithSeed fixes the food RNG so two games fed the same input stay in lockstep.
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithReporter replaces the spawn status line sink.
func WithReporter(r manager.Reporter) Option {
	return func(g *Game) { g.reporter = r }
}

func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game runs one snake round after round. It is not safe for concurrent use:
// the host calls Tick from a single loop.
type Game struct {
	Config config.Config

	snake        *entity.Snake
	movementMgr  *manager.MovementManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	requests     requestQueue

	seed     uint64
	reporter manager.Reporter
	logger   *log.Logger
	ticks    uint64
	rounds   int
}

func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		Config:   cfg,
		seed:     uint64(time.Now().UnixNano()),
		reporter: manager.NewLogReporter(os.Stdout),
		logger:   log.New(os.Stderr, "[snake] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.snake = entity.NewSnake()
	g.movementMgr = manager.NewMovementManager(cfg.Arena, cfg.Speed)
	g.collisionMgr = manager.NewCollisionManager(cfg.HeadSize, cfg.FoodSize)
	foodMgr := manager.NewFoodManager(cfg.Arena, cfg.FoodSpawnInterval, g.seed)
	g.stateMgr = manager.NewStateManager(foodMgr, g.reporter, cfg.ScoreResetOnRound)

	return g, nil
}

// Tick advances the simulation by one frame. The order is fixed: movement,
// chain shift, eating, growth, spawning, then reset.
func (g *Game) Tick(elapsed time.Duration, intents types.Intent, reset bool) TickOutcome {
	g.ticks++
	out := TickOutcome{Tick: g.ticks}

	newHead, moved := g.movementMgr.Advance(g.snake.GetHead(), intents)
	g.snake.Advance(moved, g.Config.TailShrink, newHead)

	for _, food := range g.collisionMgr.CheckFoodCollisions(newHead, g.stateMgr.GetFoodList()) {
		if g.stateMgr.EatFood(food) {
			out.Eaten = append(out.Eaten, food)
			g.requests.push(Request{Kind: GrowthRequest, At: g.snake.LastTail()})
		}
	}
	g.requests.drain(GrowthRequest, func(r Request) {
		g.snake.Grow(r.At)
	})

	if food, ok := g.stateMgr.Update(elapsed); ok {
		out.Spawned = &food
	}

	if reset {
		g.requests.push(Request{Kind: ResetRequest})
	}
	if g.requests.drain(ResetRequest, func(Request) { g.resetRound() }) > 0 {
		out.Reset = true
	}

	g.fillOutcome(&out)
	return out
}

func (g *Game) resetRound() {
	g.rounds++
	g.logger.Printf("round %d reset at tick %d: length %d, %s", g.rounds, g.ticks, g.snake.Len(), scoreString(g.stateMgr.GetScore()))
	g.stateMgr.Reset()
	g.snake.Reset()
}

// PlaceFood drops a food item at pos. Hosts use it for scripted boards.
func (g *Game) PlaceFood(pos types.Point) manager.Food {
	return g.stateMgr.AddFood(pos)
}

// Snapshot returns the current state without advancing it.
func (g *Game) Snapshot() TickOutcome {
	out := TickOutcome{Tick: g.ticks}
	g.fillOutcome(&out)
	return out
}

func (g *Game) fillOutcome(out *TickOutcome) {
	out.Segments = g.snake.Positions()
	out.Food = g.stateMgr.GetFoodList()
	out.Score = g.stateMgr.GetScore()
}

// Rounds is the number of resets so far.
func (g *Game) Rounds() int {
	return g.rounds
}

// Seed is the RNG seed in use; log it to replay a session.
func (g *Game) Seed() uint64 {
	return g.seed
}

func scoreString(s types.Score) string {
	return fmt.Sprintf("eaten %d, uneaten %d", s.Eaten, s.Uneaten())
}
