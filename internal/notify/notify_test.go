package notify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChimeStreamLength(t *testing.T) {
	s, err := Stream(SoundChime)
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0

	for {
		n, ok := s.Stream(buf)
		total += n

		if !ok {
			break
		}
	}

	assert.Equal(t, sampleRate.N(chimeLength), total)
}

func TestStreamRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.txt")
	require.NoError(t, os.WriteFile(path, []byte("ding"), 0o600))

	_, err := Stream(path)
	assert.ErrorIs(t, err, errSoundFormat)

	_, err = Stream(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDisabledNotifier(t *testing.T) {
	var n *Notifier

	n.Chime()
	n.Finished("Waves", 1, 2)

	n = New(false, SoundOff)
	n.Chime()
	n.Finished("Waves", 1, 2)

	assert.Equal(t, SoundChime, New(true, "").sound)
}
