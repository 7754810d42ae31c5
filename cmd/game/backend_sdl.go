//go:build sdl

package main

import (
	"math/rand"

	"github.com/younwookim/shooter/internal/application/game"
	"github.com/younwookim/shooter/internal/application/input"
	"github.com/younwookim/shooter/internal/application/scene"
	"github.com/younwookim/shooter/internal/infrastructure/config"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
	"github.com/younwookim/shooter/internal/infrastructure/platform/sdlhost"
)

func runSDL(cfg *config.GameConfig, fonts *gfx.FontCache, rng *rand.Rand, record func(input.Source) input.Source, opts []game.Option) error {
	win, err := sdlhost.Open(cfg.Display.Title, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Scale, gameFS)
	if err != nil {
		return err
	}
	defer win.Close()

	ctx := scene.NewContext(win, nil, fonts, rng)
	initial, err := newMenu(ctx, cfg)
	if err != nil {
		return err
	}
	return runUntilInterrupted(game.New(initial, ctx, record(sdlhost.Source{}), opts...))
}
