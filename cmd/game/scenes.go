package main

import (
	"log"

	"github.com/younwookim/shooter/internal/application/scene"
	"github.com/younwookim/shooter/internal/application/scene/menu"
	"github.com/younwookim/shooter/internal/application/scene/shooter"
	"github.com/younwookim/shooter/internal/infrastructure/config"
)

// newMenu builds the main menu. "New Game" opens the ship screen, whose
// Escape key leads back here.
func newMenu(ctx *scene.Context, cfg *config.GameConfig) (scene.Scene, error) {
	m, err := menu.New(ctx, cfg.Menu, []menu.Entry{
		{
			Label: "New Game",
			Activate: func(ctx *scene.Context) scene.Action {
				s, err := newShip(ctx, cfg)
				if err != nil {
					log.Printf("Failed to start game: %v", err)
					return scene.Quit()
				}
				return scene.ChangeScreen(s)
			},
		},
		{
			Label:    "Quit",
			Activate: func(*scene.Context) scene.Action { return scene.Quit() },
		},
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func newShip(ctx *scene.Context, cfg *config.GameConfig) (scene.Scene, error) {
	s, err := shooter.New(ctx, cfg, func(ctx *scene.Context) (scene.Scene, error) {
		return newMenu(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
