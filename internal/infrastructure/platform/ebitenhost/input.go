package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/shooter/internal/application/input"
)

var keyMap = map[input.Key]ebiten.Key{
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyUp:     ebiten.KeyArrowUp,
	input.KeyDown:   ebiten.KeyArrowDown,
	input.KeyLeft:   ebiten.KeyArrowLeft,
	input.KeyRight:  ebiten.KeyArrowRight,
	input.KeySpace:  ebiten.KeySpace,
	input.KeyEnter:  ebiten.KeyEnter,
}

// Source buffers key edges seen by ebiten ticks until the run loop polls
// them. Ticks that do not produce a frame therefore lose no input.
type Source struct {
	pending []input.Event
	closed  bool

	justPressed  func(ebiten.Key) bool
	justReleased func(ebiten.Key) bool
	closing      func() bool
}

// NewSource creates a source reading ebiten's keyboard state
func NewSource() *Source {
	return &Source{
		justPressed:  inpututil.IsKeyJustPressed,
		justReleased: inpututil.IsKeyJustReleased,
		closing:      ebiten.IsWindowBeingClosed,
	}
}

// Collect records the edges of the current ebiten tick
func (s *Source) Collect() {
	if !s.closed && s.closing() {
		s.closed = true
		s.pending = append(s.pending, input.Close())
	}
	for _, k := range input.AllKeys() {
		ek := keyMap[k]
		if s.justPressed(ek) {
			s.pending = append(s.pending, input.Press(k))
		}
		if s.justReleased(ek) {
			s.pending = append(s.pending, input.Release(k))
		}
	}
}

// Poll drains the buffered events
func (s *Source) Poll() []input.Event {
	evs := s.pending
	s.pending = nil
	return evs
}
