package input

// Script is a Source that replays a fixed list of per-frame events.
// Once exhausted it returns no events.
type Script struct {
	frames [][]Event
	next   int
}

// NewScript creates a script. frames[i] is returned by the i-th Poll.
func NewScript(frames ...[]Event) *Script {
	return &Script{frames: frames}
}

// Poll implements Source.
func (s *Script) Poll() []Event {
	if s.next >= len(s.frames) {
		return nil
	}
	evs := s.frames[s.next]
	s.next++
	return evs
}

// Done reports whether every frame has been polled.
func (s *Script) Done() bool {
	return s.next >= len(s.frames)
}

// Press is a convenience for a KeyDown event.
func Press(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Release is a convenience for a KeyUp event.
func Release(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// Close is a convenience for a WindowClose event.
func Close() Event {
	return Event{Kind: EventWindowClose}
}
