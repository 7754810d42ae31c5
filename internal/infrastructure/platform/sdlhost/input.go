//go:build sdl

package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/younwookim/shooter/internal/application/input"
)

var keyMap = map[sdl.Keycode]input.Key{
	sdl.K_ESCAPE: input.KeyEscape,
	sdl.K_UP:     input.KeyUp,
	sdl.K_DOWN:   input.KeyDown,
	sdl.K_LEFT:   input.KeyLeft,
	sdl.K_RIGHT:  input.KeyRight,
	sdl.K_SPACE:  input.KeySpace,
	sdl.K_RETURN: input.KeyEnter,
}

// Source drains the SDL event queue
type Source struct{}

// Poll returns the events queued since the previous call
func (Source) Poll() []input.Event {
	var evs []input.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := translate(event); ok {
			evs = append(evs, ev)
		}
	}
	return evs
}

func translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Close(), true
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return input.Event{}, false
		}
		k, ok := keyMap[e.Keysym.Sym]
		if !ok {
			return input.Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return input.Press(k), true
		}
		return input.Release(k), true
	}
	return input.Event{}, false
}
