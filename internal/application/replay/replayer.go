package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/shooter/internal/application/input"
)

// Replayer plays recorded frames back as an input source. Once the
// recording is exhausted it reports a window close every frame.
type Replayer struct {
	data   ReplayData
	frames [][]input.Event
	frame  int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) (*Replayer, error) {
	frames := make([][]input.Event, len(data.Frames))
	for i, fi := range data.Frames {
		for _, rec := range fi.Events {
			ev, err := rec.Event()
			if err != nil {
				return nil, fmt.Errorf("failed to decode frame %d: %w", fi.F, err)
			}
			frames[i] = append(frames[i], ev)
		}
	}
	return &Replayer{data: data, frames: frames}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// ReadReplay decodes replay data from r
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Poll returns the events of the current frame and advances.
// Implements input.Source.
func (r *Replayer) Poll() []input.Event {
	if r.Done() {
		return []input.Event{input.Close()}
	}
	evs := r.frames[r.frame]
	r.frame++
	return evs
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// CreateTestReplayData creates replay data for testing. Frame i holds
// the events of script[i]; frames beyond the script are empty.
func CreateTestReplayData(frames int, script ...[]input.Event) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i].F = i
		if i < len(script) {
			for _, ev := range script[i] {
				data.Frames[i].Events = append(data.Frames[i].Events, encodeEvent(ev))
			}
		}
	}

	return data
}
