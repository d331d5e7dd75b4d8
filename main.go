package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-sim/game"
	"snake-sim/game/config"
	"snake-sim/game/types"
	"snake-sim/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Config file (.txt line format or .yaml)")
	seed := flag.Uint64("seed", 0, "Food RNG seed (0 = time based)")
	fps := flag.Int("fps", 60, "Target frames per second")
	flag.Parse()

	log.SetPrefix("[snake] ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	opts := []game.Option{}
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}
	g, err := game.NewGame(cfg, opts...)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("seed %d, arena %dx%d", g.Seed(), cfg.Arena.Width, cfg.Arena.Height)

	rl.InitWindow(int32(cfg.Arena.Width)+200, int32(cfg.Arena.Height)+20, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(*fps))

	renderer := ui.NewRenderer(cfg.Arena, cfg.HeadSize, cfg.FoodSize)
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		now := time.Now()
		out := g.Tick(now.Sub(lastUpdate), pollIntents(), rl.IsKeyDown(rl.KeySpace))
		lastUpdate = now

		renderer.Draw(out, g.Rounds())
	}
}

// pollIntents reads the held movement keys.
func pollIntents() types.Intent {
	var intents types.Intent
	if rl.IsKeyDown(rl.KeyA) {
		intents |= types.IntentLeft
	}
	if rl.IsKeyDown(rl.KeyD) {
		intents |= types.IntentRight
	}
	if rl.IsKeyDown(rl.KeyS) {
		intents |= types.IntentDown
	}
	if rl.IsKeyDown(rl.KeyW) {
		intents |= types.IntentUp
	}
	return intents
}
