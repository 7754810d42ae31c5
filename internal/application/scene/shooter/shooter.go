// Package shooter provides the ship screen: the player's ship, an asteroid
// and three parallax star layers.
package shooter

import (
	"fmt"
	"image/color"
	"log"

	"github.com/younwookim/shooter/internal/application/input"
	"github.com/younwookim/shooter/internal/application/scene"
	"github.com/younwookim/shooter/internal/domain/entity"
	"github.com/younwookim/shooter/internal/domain/geom"
	"github.com/younwookim/shooter/internal/infrastructure/config"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{0, 0, 0, 255}
	colorShipBox = color.RGBA{200, 200, 50, 255}
	colorRockBox = color.RGBA{200, 50, 50, 255}
)

// EscapeFunc builds the screen shown when the player presses Escape
type EscapeFunc func(ctx *scene.Context) (scene.Scene, error)

type background struct {
	entity.Background
	sprite *gfx.Sprite
}

func (b *background) render(r gfx.Renderer, elapsed, winW, winH float64) {
	w, h := b.sprite.Size()
	b.Advance(elapsed, w)
	for _, dest := range b.Tiles(w, h, winW, winH) {
		gfx.CopySprite(r, b.sprite, dest)
	}
}

// layerOrder lists the background layers back to front
var layerOrder = []string{config.LayerBack, config.LayerMiddle, config.LayerFront}

// Shooter is the ship screen
type Shooter struct {
	cfg      *config.GameConfig
	onEscape EscapeFunc

	ship       *entity.Ship
	shipFrames []*gfx.Sprite

	asteroid     entity.Asteroid
	asteroidAnim *gfx.AnimatedSprite

	layers map[string][]*background
}

// New loads the screen's sprites. If onEscape is nil, Escape quits.
func New(ctx *scene.Context, cfg *config.GameConfig, onEscape EscapeFunc) (*Shooter, error) {
	s := &Shooter{
		cfg:      cfg,
		onEscape: onEscape,
		ship:     entity.NewShip(cfg.Ship.SpawnX, cfg.Ship.SpawnY, cfg.Ship.FrameWidth, cfg.Ship.FrameHeight, cfg.Ship.Speed),
		layers:   make(map[string][]*background),
	}

	r := ctx.Renderer()
	var err error
	if s.shipFrames, err = loadSheet(r, cfg.Ship.Sheet, cfg.Ship.FrameWidth, cfg.Ship.FrameHeight, 3, entity.ShipFrameCount); err != nil {
		return nil, err
	}

	rockFrames, err := loadSheet(r, cfg.Asteroid.Sheet, cfg.Asteroid.Side, cfg.Asteroid.Side, cfg.Asteroid.Columns, cfg.Asteroid.Frames)
	if err != nil {
		s.Dispose()
		return nil, err
	}
	s.asteroidAnim = gfx.AnimatedSpriteWithFPS(rockFrames, cfg.Asteroid.MinFPS)
	s.resetAsteroid(ctx)

	for _, layer := range layerOrder {
		for _, bg := range cfg.BackgroundsFor(layer) {
			sprite, ok := gfx.LoadSprite(r, bg.Sheet)
			if !ok {
				s.Dispose()
				return nil, fmt.Errorf("failed to load background %s", bg.Sheet)
			}
			s.layers[layer] = append(s.layers[layer], &background{
				Background: entity.Background{Vel: bg.Velocity},
				sprite:     sprite,
			})
		}
	}

	return s, nil
}

// loadSheet cuts count w×h cells out of the image at path, row-major with
// columns cells per row.
func loadSheet(r gfx.Renderer, path string, w, h float64, columns, count int) ([]*gfx.Sprite, error) {
	sheet, ok := gfx.LoadSprite(r, path)
	if !ok {
		return nil, fmt.Errorf("failed to load spritesheet %s", path)
	}
	defer sheet.Release()

	frames := make([]*gfx.Sprite, 0, count)
	for i := 0; i < count; i++ {
		x, y := i%columns, i/columns
		frame, ok := sheet.Region(geom.New(w*float64(x), h*float64(y), w, h))
		if !ok {
			for _, f := range frames {
				f.Release()
			}
			return nil, fmt.Errorf("spritesheet %s has no cell %d", path, i)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func (s *Shooter) resetAsteroid(ctx *scene.Context) {
	w, h := ctx.OutputSize()
	c := s.cfg.Asteroid
	s.asteroid.Reset(ctx.Rand(), w, h, entity.AsteroidRanges{
		Side:     c.Side,
		MinFPS:   c.MinFPS,
		MaxFPS:   c.MaxFPS,
		MinSpeed: c.MinSpeed,
		MaxSpeed: c.MaxSpeed,
	})
	s.asteroidAnim.SetFPS(s.asteroid.FPS)
}

// Render runs one frame of the screen
func (s *Shooter) Render(ctx *scene.Context, elapsed float64) scene.Action {
	events := ctx.Events()
	if events.Quit() {
		return scene.Quit()
	}
	if events.JustPressed(input.KeyEscape) {
		return s.escape(ctx)
	}

	winW, winH := ctx.OutputSize()
	movable := geom.New(0, 0, winW*s.cfg.Ship.MovableWidth, winH)
	in := entity.ShipInput{
		Left:  events.Held(input.KeyLeft),
		Right: events.Held(input.KeyRight),
		Up:    events.Held(input.KeyUp),
		Down:  events.Held(input.KeyDown),
	}
	if !s.ship.Move(in, elapsed, movable) {
		panic(fmt.Sprintf("shooter: ship %v does not fit in %v", s.ship.Rect, movable))
	}

	if s.asteroid.Update(elapsed) {
		s.resetAsteroid(ctx)
	}
	s.asteroidAnim.AddTime(elapsed)

	r := ctx.Renderer()
	r.SetDrawColor(colorBG)
	r.Clear()

	s.renderLayer(r, config.LayerBack, elapsed, winW, winH)
	s.renderLayer(r, config.LayerMiddle, elapsed, winW, winH)

	if s.cfg.Debug.BoundingBoxes {
		r.SetDrawColor(colorShipBox)
		r.FillRect(s.ship.Rect)
		r.SetDrawColor(colorRockBox)
		r.FillRect(s.asteroid.Rect)
	}

	gfx.CopySprite(r, s.shipFrames[s.ship.Current], s.ship.Rect)
	gfx.CopySprite(r, s.asteroidAnim, s.asteroid.Rect)

	s.renderLayer(r, config.LayerFront, elapsed, winW, winH)

	return scene.Continue()
}

func (s *Shooter) escape(ctx *scene.Context) scene.Action {
	if s.onEscape == nil {
		return scene.Quit()
	}
	next, err := s.onEscape(ctx)
	if err != nil {
		log.Printf("Failed to leave ship screen: %v", err)
		return scene.Quit()
	}
	return scene.ChangeScreen(next)
}

func (s *Shooter) renderLayer(r gfx.Renderer, layer string, elapsed, winW, winH float64) {
	for _, bg := range s.layers[layer] {
		bg.render(r, elapsed, winW, winH)
	}
}

// Ship returns the player's ship
func (s *Shooter) Ship() *entity.Ship {
	return s.ship
}

// Asteroid returns the asteroid
func (s *Shooter) Asteroid() *entity.Asteroid {
	return &s.asteroid
}

// Dispose releases every sprite held by the screen
func (s *Shooter) Dispose() {
	for _, f := range s.shipFrames {
		f.Release()
	}
	s.shipFrames = nil
	if s.asteroidAnim != nil {
		s.asteroidAnim.Release()
		s.asteroidAnim = nil
	}
	for layer, bgs := range s.layers {
		for _, bg := range bgs {
			bg.sprite.Release()
		}
		delete(s.layers, layer)
	}
}
