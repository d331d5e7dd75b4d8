package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-sim/game"
	"snake-sim/game/config"
	"snake-sim/game/manager"
	"snake-sim/ui/term"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Config file (.txt line format or .yaml)")
	seed := flag.Uint64("seed", 0, "Food RNG seed (0 = time based)")
	tick := flag.Duration("tick", 16*time.Millisecond, "Simulation tick interval")
	hold := flag.Duration("hold", term.DefaultHold, "How long a key press counts as held")
	logPath := flag.String("log", "", "Write status lines to this file instead of discarding them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// The screen owns stdout, so status lines go to a file or nowhere.
	var sink io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		sink = f
	}
	logger := log.New(sink, "[snake] ", log.LstdFlags)

	opts := []game.Option{
		game.WithReporter(manager.NewLogReporter(sink)),
		game.WithLogger(logger),
	}
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}
	g, err := game.NewGame(cfg, opts...)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger.Printf("seed %d, arena %dx%d", g.Seed(), cfg.Arena.Width, cfg.Arena.Height)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("new screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run(ctx, screen, g, *tick, *hold)
}

func run(ctx context.Context, screen tcell.Screen, g *game.Game, tick, hold time.Duration) {
	renderer := term.NewRenderer(screen, g.Config.Arena, g.Config.HeadSize, g.Config.FoodSize)
	keys := term.NewKeyState(hold)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	renderer.Draw(g.Snapshot(), g.Rounds())
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
				if ev.Key() == tcell.KeyRune {
					keys.Press(ev.Rune(), time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			}

		case now := <-ticker.C:
			out := g.Tick(now.Sub(last), keys.Intents(now), keys.TakeReset())
			last = now
			renderer.Draw(out, g.Rounds())

		case <-ctx.Done():
			return
		}
	}
}
