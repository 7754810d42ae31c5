package input

// EventKind is the type of a raw input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventWindowClose
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventWindowClose:
		return "WindowClose"
	default:
		return "Unknown"
	}
}

// Event is a raw event produced by a Source.
// Key is ignored for WindowClose.
type Event struct {
	Kind EventKind
	Key  Key
}

// Source is polled once per frame for the events since the previous poll.
type Source interface {
	Poll() []Event
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []Event

// Poll implements Source.
func (f SourceFunc) Poll() []Event {
	return f()
}

// Edge is the transition a key went through during one frame.
type Edge int8

const (
	// EdgeNone means the key did not change state.
	EdgeNone Edge = iota
	// EdgePressed means the key went down.
	EdgePressed
	// EdgeReleased means the key went up.
	EdgeReleased
)

// Frame is one generation of the snapshot.
type Frame struct {
	Keys [keyCount]Edge
	Quit bool
}

// Edge returns the transition of k in this frame.
func (f Frame) Edge(k Key) Edge {
	if !k.valid() {
		return EdgeNone
	}
	return f.Keys[k]
}

// Events is the per-frame input snapshot. Now holds the transitions of
// the current frame, Previous those of the frame before.
type Events struct {
	Now      Frame
	Previous Frame

	held [keyCount]bool
}

// NewEvents creates an empty snapshot.
func NewEvents() *Events {
	return &Events{}
}

// Pump rotates the generations and refills Now from src.
func (e *Events) Pump(src Source) {
	e.Previous = e.Now
	e.Now = Frame{}

	if src == nil {
		return
	}
	for _, ev := range src.Poll() {
		e.apply(ev)
	}
}

func (e *Events) apply(ev Event) {
	switch ev.Kind {
	case EventWindowClose:
		e.Now.Quit = true
	case EventKeyDown:
		if !ev.Key.valid() {
			return
		}
		// Held keys generate repeat events; only the first one is an edge.
		if !e.held[ev.Key] {
			e.Now.Keys[ev.Key] = EdgePressed
		}
		e.held[ev.Key] = true
	case EventKeyUp:
		if !ev.Key.valid() {
			return
		}
		if e.held[ev.Key] {
			e.Now.Keys[ev.Key] = EdgeReleased
		}
		e.held[ev.Key] = false
	}
}

// Held reports whether k is currently down.
func (e *Events) Held(k Key) bool {
	return k.valid() && e.held[k]
}

// JustPressed reports whether k went down this frame.
func (e *Events) JustPressed(k Key) bool {
	return e.Now.Edge(k) == EdgePressed
}

// JustReleased reports whether k went up this frame.
func (e *Events) JustReleased(k Key) bool {
	return e.Now.Edge(k) == EdgeReleased
}

// WasPressed reports whether k went down in the previous frame.
func (e *Events) WasPressed(k Key) bool {
	return e.Previous.Edge(k) == EdgePressed
}

// Quit reports whether a close request arrived this frame.
func (e *Events) Quit() bool {
	return e.Now.Quit
}
