package main

import (
	"fmt"
	"hash/crc32"
	"io/fs"
	"log/slog"
	"math/rand"
	"time"

	"github.com/younwookim/shooter/internal/application/game"
	"github.com/younwookim/shooter/internal/application/replay"
	"github.com/younwookim/shooter/internal/application/scene"
	"github.com/younwookim/shooter/internal/infrastructure/config"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
	"github.com/younwookim/shooter/internal/infrastructure/platform/software"
)

// stepClock is a clock whose Sleep advances time instantly, so every
// Advance renders exactly one frame with no wall-clock wait.
type stepClock struct {
	now time.Duration
}

func (c *stepClock) Now() time.Duration { return c.now }

func (c *stepClock) Sleep(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// ReplayResult summarises a headless replay
type ReplayResult struct {
	Frames   int
	Checksum uint32 // CRC-32 of the last presented frame
}

// runReplay plays data back with the software renderer
func runReplay(cfg *config.GameConfig, assets fs.FS, data *replay.ReplayData, logger *slog.Logger) (ReplayResult, error) {
	replayer, err := replay.NewReplayer(*data)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to load replay: %w", err)
	}

	r := software.NewRenderer(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, assets)
	ctx := scene.NewContext(r, nil, gfx.NewFontCache(assets), rand.New(rand.NewSource(data.Seed)))

	initial, err := newMenu(ctx, cfg)
	if err != nil {
		return ReplayResult{}, err
	}

	// One extra frame lets the scene see the close that ends the replay.
	loop := game.New(initial, ctx, replayer,
		game.WithClock(&stepClock{}),
		game.WithFramerate(cfg.Display.Framerate),
		game.WithLogger(logger),
		game.WithMaxFrames(replayer.TotalFrames()+1),
	)
	for !loop.Done() {
		loop.Advance()
	}

	return ReplayResult{
		Frames:   loop.Frames(),
		Checksum: crc32.ChecksumIEEE(r.Frame().Pix),
	}, nil
}
