// Package menu provides the main menu screen.
package menu

import (
	"fmt"
	"image/color"

	"github.com/younwookim/shooter/internal/application/input"
	"github.com/younwookim/shooter/internal/application/scene"
	"github.com/younwookim/shooter/internal/domain/geom"
	"github.com/younwookim/shooter/internal/infrastructure/config"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
)

// Colors for rendering
var (
	colorBG    = color.RGBA{0, 0, 0, 255}
	colorIdle  = color.RGBA{220, 220, 220, 255}
	colorHover = color.RGBA{255, 200, 0, 255}
)

// Spacing between entries in pixels
const lineGap = 16

// Entry is a selectable menu line
type Entry struct {
	Label    string
	Activate func(ctx *scene.Context) scene.Action
}

type item struct {
	Entry
	idle  *gfx.Sprite
	hover *gfx.Sprite
}

// Menu lists entries vertically centred on screen
type Menu struct {
	items    []item
	selected int
}

// New renders the entry labels with the configured font
func New(ctx *scene.Context, cfg config.MenuConfig, entries []Entry) (*Menu, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("menu has no entries")
	}

	m := &Menu{}
	for _, e := range entries {
		idle, ok := ctx.TextSprite(cfg.Font, cfg.FontSize, e.Label, colorIdle)
		if !ok {
			m.Dispose()
			return nil, fmt.Errorf("failed to render menu entry %q with %s", e.Label, cfg.Font)
		}
		hover, ok := ctx.TextSprite(cfg.Font, cfg.FontSize, e.Label, colorHover)
		if !ok {
			idle.Release()
			m.Dispose()
			return nil, fmt.Errorf("failed to render menu entry %q with %s", e.Label, cfg.Font)
		}
		m.items = append(m.items, item{Entry: e, idle: idle, hover: hover})
	}
	return m, nil
}

// Selected returns the index of the highlighted entry
func (m *Menu) Selected() int {
	return m.selected
}

// Render runs one frame of the menu
func (m *Menu) Render(ctx *scene.Context, elapsed float64) scene.Action {
	events := ctx.Events()
	if events.Quit() || events.JustPressed(input.KeyEscape) {
		return scene.Quit()
	}

	switch {
	case events.JustPressed(input.KeyUp):
		m.selected = (m.selected + len(m.items) - 1) % len(m.items)
	case events.JustPressed(input.KeyDown):
		m.selected = (m.selected + 1) % len(m.items)
	}

	if events.JustPressed(input.KeyEnter) || events.JustPressed(input.KeySpace) {
		if activate := m.items[m.selected].Activate; activate != nil {
			return activate(ctx)
		}
	}

	r := ctx.Renderer()
	r.SetDrawColor(colorBG)
	r.Clear()

	winW, winH := ctx.OutputSize()
	for i, dest := range m.layout(winW, winH) {
		sprite := m.items[i].idle
		if i == m.selected {
			sprite = m.items[i].hover
		}
		gfx.CopySprite(r, sprite, dest)
	}

	return scene.Continue()
}

// layout centres the labels as a column
func (m *Menu) layout(winW, winH float64) []geom.Rectangle {
	total := 0.0
	for i, it := range m.items {
		_, h := it.idle.Size()
		total += h
		if i > 0 {
			total += lineGap
		}
	}

	rects := make([]geom.Rectangle, 0, len(m.items))
	y := (winH - total) / 2
	for _, it := range m.items {
		w, h := it.idle.Size()
		rects = append(rects, geom.New((winW-w)/2, y, w, h))
		y += h + lineGap
	}
	return rects
}

// Dispose releases the label sprites
func (m *Menu) Dispose() {
	for _, it := range m.items {
		it.idle.Release()
		it.hover.Release()
	}
	m.items = nil
}
