package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/shooter/internal/application/game"
)

// Host implements ebiten.Game on top of a run loop. Every ebiten update
// advances the loop by exactly one frame.
type Host struct {
	loop     *game.Loop
	renderer *Renderer
	source   *Source
	showFPS  bool
}

// NewHost creates a host. The loop must have been built with renderer and
// source.
func NewHost(loop *game.Loop, renderer *Renderer, source *Source, showFPS bool) *Host {
	return &Host{
		loop:     loop,
		renderer: renderer,
		source:   source,
		showFPS:  showFPS,
	}
}

// Update collects input and runs the next frame.
// Implements ebiten.Game interface.
func (h *Host) Update() error {
	h.source.Collect()
	h.loop.Advance()
	if h.loop.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw shows the last presented frame.
// Implements ebiten.Game interface.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.renderer.Frame(), nil)
	if h.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %d", h.loop.FPS()), 4, 4)
	}
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.renderer.OutputSize()
}

// Run opens the window and blocks until the loop stops or the window is
// closed.
func Run(h *Host, title string, scale int) error {
	w, hgt := h.renderer.OutputSize()
	ebiten.SetWindowSize(w*scale, hgt*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	// The loop does its own pacing.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
