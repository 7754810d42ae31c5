package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/younwookim/shooter/internal/application/game"
	"github.com/younwookim/shooter/internal/application/input"
	"github.com/younwookim/shooter/internal/application/replay"
	"github.com/younwookim/shooter/internal/application/scene"
	"github.com/younwookim/shooter/internal/infrastructure/config"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
	"github.com/younwookim/shooter/internal/infrastructure/platform/ebitenhost"
	"github.com/younwookim/shooter/internal/infrastructure/platform/software"
)

// Backend names for -backend
const (
	backendEbiten   = "ebiten"
	backendSoftware = "software"
	backendSDL      = "sdl"
)

// recordAuto asks for a timestamped recording file name
const recordAuto = "auto"

// options holds the parsed command line
type options struct {
	backend    string
	configDir  string
	frames     int
	record     string
	replayFile string
	seed       int64
	logLevel   string
}

func parseFlags(args []string) (options, error) {
	var o options
	fset := flag.NewFlagSet("game", flag.ContinueOnError)
	fset.StringVar(&o.backend, "backend", backendEbiten, "Renderer backend: ebiten, software or sdl")
	fset.StringVar(&o.configDir, "config", "", "Directory containing game.json (default: embedded config)")
	fset.IntVar(&o.frames, "frames", 0, "Stop after this many frames (0: no limit)")
	fset.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	fset.StringVar(&o.replayFile, "replay", "", "Play a recording headlessly and print a checksum of the last frame")
	fset.Int64Var(&o.seed, "seed", 0, "Random seed (0: current time)")
	fset.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	if err := fset.Parse(args); err != nil {
		return o, err
	}

	switch o.backend {
	case backendEbiten, backendSoftware, backendSDL:
	default:
		return o, fmt.Errorf("unknown backend: %s", o.backend)
	}
	if o.record == recordAuto {
		o.record = replay.GenerateFilename()
	}
	if o.backend == backendSoftware && o.frames <= 0 && o.replayFile == "" {
		return o, fmt.Errorf("the software backend needs -frames")
	}
	return o, nil
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).Load()
	}
	fsys, err := fs.Sub(gameFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	level, err := ResolveLogLevel(opts.logLevel)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	logger := newLogger(level)

	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if opts.replayFile != "" {
		data, err := replay.LoadReplay(opts.replayFile)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		res, err := runReplay(cfg, gameFS, data, logger)
		if err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
		fmt.Printf("frames=%d checksum=%08x\n", res.Frames, res.Checksum)
		return
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := run(opts, cfg, seed, logger); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}

// run builds the context and the loop for the selected backend and runs it
// to completion.
func run(opts options, cfg *config.GameConfig, seed int64, logger *slog.Logger) error {
	rng := rand.New(rand.NewSource(seed))
	fonts := gfx.NewFontCache(gameFS)
	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight

	var recorder *replay.Recorder
	record := func(src input.Source) input.Source {
		if opts.record == "" {
			return src
		}
		recorder = replay.NewRecorder(src, seed)
		log.Printf("Recording enabled: %s (seed: %d)", opts.record, seed)
		return recorder
	}

	loopOpts := []game.Option{
		game.WithFramerate(cfg.Display.Framerate),
		game.WithLogger(logger),
		game.WithMaxFrames(opts.frames),
	}

	var err error
	switch opts.backend {
	case backendEbiten:
		r := ebitenhost.NewRenderer(w, h, gameFS)
		src := ebitenhost.NewSource()
		ctx := scene.NewContext(r, nil, fonts, rng)
		var initial scene.Scene
		if initial, err = newMenu(ctx, cfg); err != nil {
			return err
		}
		loop := game.New(initial, ctx, record(src), loopOpts...)
		err = ebitenhost.Run(ebitenhost.NewHost(loop, r, src, cfg.Display.ShowFPS), cfg.Display.Title, cfg.Display.Scale)

	case backendSoftware:
		r := software.NewRenderer(w, h, gameFS)
		ctx := scene.NewContext(r, nil, fonts, rng)
		var initial scene.Scene
		if initial, err = newMenu(ctx, cfg); err != nil {
			return err
		}
		loop := game.New(initial, ctx, record(input.NewScript()), loopOpts...)
		err = runUntilInterrupted(loop)
		logger.Info("headless run finished", "frames", loop.Frames(), "presented", r.Presented())

	case backendSDL:
		err = runSDL(cfg, fonts, rng, record, loopOpts)
	}

	if recorder != nil {
		if saveErr := recorder.Save(opts.record); saveErr != nil {
			log.Printf("Failed to save recording: %v", saveErr)
		} else {
			log.Printf("Recording saved: %s (%d frames)", opts.record, recorder.FrameCount())
		}
	}
	return err
}

func runUntilInterrupted(loop *game.Loop) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
