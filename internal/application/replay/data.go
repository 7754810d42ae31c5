package replay

import (
	"fmt"

	"github.com/younwookim/shooter/internal/application/input"
)

// Version is written to every recording
const Version = "1.0"

// EventRecord is the serialised form of an input event
type EventRecord struct {
	Kind string `json:"k"`             // KeyDown, KeyUp or WindowClose
	Key  string `json:"key,omitempty"` // Key name, empty for WindowClose
}

// FrameInput records the events polled for a single frame
type FrameInput struct {
	F      int           `json:"f"` // Frame number
	Events []EventRecord `json:"e,omitempty"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func encodeEvent(ev input.Event) EventRecord {
	rec := EventRecord{Kind: ev.Kind.String()}
	if ev.Kind != input.EventWindowClose {
		rec.Key = ev.Key.String()
	}
	return rec
}

// Event decodes the record
func (e EventRecord) Event() (input.Event, error) {
	switch e.Kind {
	case input.EventWindowClose.String():
		return input.Close(), nil
	case input.EventKeyDown.String(), input.EventKeyUp.String():
		k, ok := input.ParseKey(e.Key)
		if !ok {
			return input.Event{}, fmt.Errorf("unknown key %q", e.Key)
		}
		if e.Kind == input.EventKeyDown.String() {
			return input.Press(k), nil
		}
		return input.Release(k), nil
	default:
		return input.Event{}, fmt.Errorf("unknown event kind %q", e.Kind)
	}
}
