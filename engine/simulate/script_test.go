package simulate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkScript = `
name: slow-walk
tour: apartment
frames: 120
events:
  - {frame: 40, kind: touch_end}
  - {frame: 0, kind: wheel, delta: 100, repeat: 20}
  - {frame: 0, kind: touch_start}
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(walkScript))
	require.NoError(t, err)

	assert.Equal(t, "slow-walk", s.Name)
	assert.Equal(t, "apartment", s.Tour)
	assert.Equal(t, float32(60), s.FPS)
	require.Len(t, s.Events, 3)
	// stable by frame: same-frame events keep file order
	assert.Equal(t, EventWheel, s.Events[0].Kind)
	assert.Equal(t, EventTouchStart, s.Events[1].Kind)
	assert.Equal(t, EventTouchEnd, s.Events[2].Kind)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "frames: 10\nevents: [{frame: 0, kind: pinch}]", ErrUnknownEvent},
		{"no frames", "frames: 0", ErrBadScript},
		{"negative fps", "frames: 10\nfps: -30", ErrBadScript},
		{"event past end", "frames: 10\nevents: [{frame: 10, kind: wheel}]", ErrBadScript},
		{"negative repeat", "frames: 10\nevents: [{frame: 1, kind: wheel, repeat: -1}]", ErrBadScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseScript([]byte("frames: [oops"))
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(walkScript), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 120, s.Frames)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEventsAtHonoursRepeat(t *testing.T) {
	s, err := ParseScript([]byte(walkScript))
	require.NoError(t, err)

	assert.Len(t, s.eventsAt(0), 2)
	assert.Len(t, s.eventsAt(19), 1)
	assert.Empty(t, s.eventsAt(20))
	assert.Equal(t, EventTouchEnd, s.eventsAt(40)[0].Kind)
}
