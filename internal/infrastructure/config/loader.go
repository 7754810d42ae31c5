package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileName is the name of the game configuration file
const FileName = "game.json"

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load loads and validates game.json
func (l *Loader) Load() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s/%s: %w", l.basePath, FileName, err)
	}

	return &cfg, nil
}

// Validate checks the values the engine relies on
func (c *GameConfig) Validate() error {
	var errs []error

	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight))
	}
	if d.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display framerate must be positive, got %d", d.Framerate))
	}
	if d.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display scale must be positive, got %d", d.Scale))
	}

	s := c.Ship
	if s.Sheet == "" {
		errs = append(errs, errors.New("ship sheet is required"))
	}
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("ship frame size must be positive, got %vx%v", s.FrameWidth, s.FrameHeight))
	}
	if s.MovableWidth <= 0 || s.MovableWidth > 1 {
		errs = append(errs, fmt.Errorf("ship movableWidth must be in (0, 1], got %v", s.MovableWidth))
	}

	a := c.Asteroid
	if a.Sheet == "" {
		errs = append(errs, errors.New("asteroid sheet is required"))
	}
	if a.Side <= 0 {
		errs = append(errs, fmt.Errorf("asteroid side must be positive, got %v", a.Side))
	}
	if a.Frames <= 0 || a.Frames > a.Columns*a.Rows {
		errs = append(errs, fmt.Errorf("asteroid frames must be in [1, %d], got %d", a.Columns*a.Rows, a.Frames))
	}
	if a.MinFPS <= 0 || a.MaxFPS < a.MinFPS {
		errs = append(errs, fmt.Errorf("asteroid fps range [%v, %v] is invalid", a.MinFPS, a.MaxFPS))
	}
	if a.MaxSpeed < a.MinSpeed {
		errs = append(errs, fmt.Errorf("asteroid speed range [%v, %v] is invalid", a.MinSpeed, a.MaxSpeed))
	}

	for i, bg := range c.Backgrounds {
		switch bg.Layer {
		case LayerBack, LayerMiddle, LayerFront:
		default:
			errs = append(errs, fmt.Errorf("background %d: unknown layer %q", i, bg.Layer))
		}
		if bg.Sheet == "" {
			errs = append(errs, fmt.Errorf("background %d: sheet is required", i))
		}
	}

	if c.Menu.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("menu fontSize must be positive, got %v", c.Menu.FontSize))
	}

	return errors.Join(errs...)
}

// BackgroundsFor returns the backgrounds of the given layer in file order
func (c *GameConfig) BackgroundsFor(layer string) []BackgroundConfig {
	var out []BackgroundConfig
	for _, bg := range c.Backgrounds {
		if bg.Layer == layer {
			out = append(out, bg)
		}
	}
	return out
}
