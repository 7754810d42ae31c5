// Package input turns polled key and window events into a per-frame
// snapshot with edge detection.
package input

// Key identifies a key tracked by the engine.
type Key int

const (
	KeyEscape Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter

	keyCount
)

// AllKeys returns every tracked key.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// ParseKey returns the key with the given name.
func ParseKey(name string) (Key, bool) {
	for _, k := range AllKeys() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func (k Key) valid() bool {
	return k >= 0 && k < keyCount
}
