package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/shooter/internal/application/input"
)

func TestEventRecord_Event(t *testing.T) {
	tests := []struct {
		name    string
		rec     EventRecord
		want    input.Event
		wantErr bool
	}{
		{"key down", EventRecord{Kind: "KeyDown", Key: "Up"}, input.Press(input.KeyUp), false},
		{"key up", EventRecord{Kind: "KeyUp", Key: "Enter"}, input.Release(input.KeyEnter), false},
		{"close", EventRecord{Kind: "WindowClose"}, input.Close(), false},
		{"unknown key", EventRecord{Kind: "KeyDown", Key: "F13"}, input.Event{}, true},
		{"unknown kind", EventRecord{Kind: "MouseDown"}, input.Event{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rec.Event()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	assert.Equal(t, EventRecord{Kind: "KeyDown", Key: "Space"}, encodeEvent(input.Press(input.KeySpace)))
	assert.Equal(t, EventRecord{Kind: "WindowClose"}, encodeEvent(input.Close()))
}

func TestRecorder_Poll(t *testing.T) {
	src := input.NewScript(
		[]input.Event{input.Press(input.KeyRight)},
		nil,
		[]input.Event{input.Release(input.KeyRight), input.Press(input.KeyUp)},
	)
	rec := NewRecorder(src, 42)

	assert.Equal(t, []input.Event{input.Press(input.KeyRight)}, rec.Poll())
	assert.Empty(t, rec.Poll())
	assert.Len(t, rec.Poll(), 2)

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.Empty(t, data.Frames[1].Events, "empty frames are still recorded")
	assert.Equal(t, []EventRecord{{Kind: "KeyUp", Key: "Right"}, {Kind: "KeyDown", Key: "Up"}}, data.Frames[2].Events)
}

func TestRecorder_NoFrames(t *testing.T) {
	rec := NewRecorder(input.NewScript(), 1)

	var buf bytes.Buffer
	assert.ErrorIs(t, rec.Write(&buf), ErrNoFrames)
	assert.ErrorIs(t, rec.Save(filepath.Join(t.TempDir(), "replay.json")), ErrNoFrames)
}

func TestRecordAndReplay(t *testing.T) {
	script := [][]input.Event{
		{input.Press(input.KeyDown)},
		nil,
		{input.Release(input.KeyDown), input.Press(input.KeyEscape)},
		{input.Close()},
	}
	rec := NewRecorder(input.NewScript(script...), 7)
	for range script {
		rec.Poll()
	}

	filename := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.Save(filename))

	data, err := LoadReplay(filename)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Seed)

	replayer, err := NewReplayer(*data)
	require.NoError(t, err)
	assert.Equal(t, len(script), replayer.TotalFrames())
	assert.Equal(t, int64(7), replayer.Seed())

	for i, want := range script {
		assert.Equal(t, len(want), len(replayer.Poll()), "frame %d", i)
	}
	assert.True(t, replayer.Done())
}

func TestReplayer_Poll(t *testing.T) {
	data := CreateTestReplayData(3, []input.Event{input.Press(input.KeyLeft)})
	replayer, err := NewReplayer(data)
	require.NoError(t, err)

	assert.Equal(t, []input.Event{input.Press(input.KeyLeft)}, replayer.Poll())
	assert.Empty(t, replayer.Poll())
	assert.Equal(t, 2, replayer.CurrentFrame())
	assert.Empty(t, replayer.Poll())
	assert.True(t, replayer.Done())

	// Exhausted replays close the window
	assert.Equal(t, []input.Event{input.Close()}, replayer.Poll())
	assert.Equal(t, []input.Event{input.Close()}, replayer.Poll())
}

func TestNewReplayer_InvalidEvent(t *testing.T) {
	data := ReplayData{Frames: []FrameInput{{F: 0, Events: []EventRecord{{Kind: "KeyDown", Key: "Tab"}}}}}
	_, err := NewReplayer(data)
	assert.Error(t, err)
}

func TestReadReplay(t *testing.T) {
	doc := `{"version":"1.0","seed":5,"startTime":"2024-01-01T00:00:00Z",
		"frames":[{"f":0,"e":[{"k":"KeyDown","key":"Left"}]},{"f":1}]}`

	data, err := ReadReplay(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, int64(5), data.Seed)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, "Left", data.Frames[0].Events[0].Key)

	_, err = ReadReplay(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestLoadReplay_Missing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Empty(t, frame.Events)
	}
}
