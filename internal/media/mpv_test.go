package media

import (
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMPVRejectsBadCommand(t *testing.T) {
	_, err := NewMPV("")
	assert.ErrorIs(t, err, errMPVCommand)

	_, err = NewMPV(`mpv "--title=unterminated`)
	assert.ErrorIs(t, err, errMPVCommand)
}

func TestCloseKillsPlayerThatIgnoresQuit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the sleep command")
	}

	sleep, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep is not available")
	}

	m, err := NewMPV("mpv")
	require.NoError(t, err)

	m.quitWait = 50 * time.Millisecond

	cmd := exec.Command(sleep, "30")
	require.NoError(t, cmd.Start())

	m.watch(cmd)

	begin := time.Now()
	require.NoError(t, m.Close())

	assert.Less(t, time.Since(begin), 5*time.Second)
	require.NotNil(t, cmd.ProcessState)
	assert.False(t, cmd.ProcessState.Success())

	require.NoError(t, m.Close())
}
