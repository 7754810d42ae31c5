//go:build !sdl

package main

import (
	"errors"
	"math/rand"

	"github.com/younwookim/shooter/internal/application/game"
	"github.com/younwookim/shooter/internal/application/input"
	"github.com/younwookim/shooter/internal/infrastructure/config"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
)

func runSDL(*config.GameConfig, *gfx.FontCache, *rand.Rand, func(input.Source) input.Source, []game.Option) error {
	return errors.New("built without SDL support, rebuild with -tags sdl")
}
