package media

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/youtube"
)

const (
	ipcDialTimeout    = 5 * time.Second
	ipcRetryInterval  = 100 * time.Millisecond
	ipcRequestTimeout = 3 * time.Second
	ipcMaxLine        = 1 << 20
	quitTimeout       = 2 * time.Second
)

// observed lists the properties mpv reports changes for. The observer id of
// each property is its index plus one.
var observed = []string{"time-pos", "duration", "pause", "eof-reached"}

var (
	errMPVCommand = &apperr.Error{
		Message: "unable to parse media.command",
	}

	errMPVStart = &apperr.Error{
		Message: "unable to start the video player",
	}

	errIPC = &apperr.Error{
		Message: "video player rejected %s: %s",
	}

	errIPCTimeout = &apperr.Error{
		Message: "video player did not answer %s in time",
	}

	errPlayback = &apperr.Error{
		Message: "the video could not be played",
	}

	errEmptyCommand = errors.New("command is empty")
	errIPCClosed    = errors.New("connection to the video player was lost")
)

type ipcRequest struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id"`
}

type ipcMessage struct {
	Data      json.RawMessage `json:"data"`
	Event     string          `json:"event"`
	Error     string          `json:"error"`
	Name      string          `json:"name"`
	Reason    string          `json:"reason"`
	RequestID int             `json:"request_id"`
}

// MPV drives an mpv process through its JSON IPC socket. mpv resolves
// YouTube links itself when yt-dlp is installed.
type MPV struct {
	cmd      *exec.Cmd
	exited   chan struct{}
	conn     net.Conn
	events   chan Event
	pending  map[int]chan ipcMessage
	socket   string
	command  []string
	quitWait time.Duration
	timePos  float64
	duration float64
	nextID   int
	mu       sync.Mutex
	writeMu  sync.Mutex
	paused   bool
	closed   bool
}

// NewMPV returns a player that launches command on first use. command is
// split with shell quoting rules.
func NewMPV(command string) (*MPV, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, errMPVCommand.Wrap(err)
	}

	if len(args) == 0 {
		return nil, errMPVCommand.Wrap(errEmptyCommand)
	}

	return &MPV{
		command:  args,
		quitWait: quitTimeout,
		events:   make(chan Event, eventBuffer),
		pending:  make(map[int]chan ipcMessage),
		paused:   true,
	}, nil
}

// emit must be called with m.mu held.
func (m *MPV) emit(kind EventKind, err error) {
	if m.closed {
		return
	}

	select {
	case m.events <- Event{Kind: kind, Err: err}:
	default:
	}
}

func (m *MPV) start() error {
	socket := filepath.Join(
		os.TempDir(),
		fmt.Sprintf("lessons-mpv-%d.sock", os.Getpid()),
	)

	_ = os.Remove(socket)

	args := make([]string, 0, len(m.command)+2)
	args = append(args, m.command[1:]...)
	args = append(args, "--idle=yes", "--pause=yes", "--input-ipc-server="+socket)

	cmd := exec.Command(m.command[0], args...)

	err := cmd.Start()
	if err != nil {
		return errMPVStart.Wrap(err)
	}

	conn, err := dialIPC(socket, ipcDialTimeout)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()

		return errMPVStart.Wrap(err)
	}

	m.mu.Lock()
	m.conn = conn
	m.socket = socket
	m.mu.Unlock()

	m.watch(cmd)

	go m.read(conn)

	for i, name := range observed {
		if _, err := m.request("observe_property", i+1, name); err != nil {
			return err
		}
	}

	return nil
}

// watch records cmd as the running player and reaps it once it exits.
func (m *MPV) watch(cmd *exec.Cmd) {
	exited := make(chan struct{})

	m.mu.Lock()
	m.cmd = cmd
	m.exited = exited
	m.mu.Unlock()

	go func() {
		err := cmd.Wait()
		close(exited)

		m.mu.Lock()
		defer m.mu.Unlock()

		if !m.closed {
			slog.Warn("video player exited", slog.Any("error", err))
			m.emit(Failed, errIPCClosed)
		}
	}()
}

func dialIPC(socket string, timeout time.Duration) (net.Conn, error) {
	deadline := time.Now().Add(timeout)

	for {
		conn, err := net.DialTimeout("unix", socket, ipcRetryInterval)
		if err == nil {
			return conn, nil
		}

		if time.Now().After(deadline) {
			return nil, err
		}

		time.Sleep(ipcRetryInterval)
	}
}

func (m *MPV) forget(id int) {
	m.mu.Lock()
	delete(m.pending, id)
	m.mu.Unlock()
}

// request sends a command and waits for mpv's reply.
func (m *MPV) request(args ...any) (ipcMessage, error) {
	name := fmt.Sprint(args[0])

	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return ipcMessage{}, errClosed
	}

	if m.conn == nil {
		m.mu.Unlock()
		return ipcMessage{}, errNotLoaded
	}

	m.nextID++
	id := m.nextID
	reply := make(chan ipcMessage, 1)
	m.pending[id] = reply
	conn := m.conn

	m.mu.Unlock()

	b, err := json.Marshal(ipcRequest{Command: args, RequestID: id})
	if err != nil {
		m.forget(id)
		return ipcMessage{}, err
	}

	m.writeMu.Lock()
	_, err = conn.Write(append(b, '\n'))
	m.writeMu.Unlock()

	if err != nil {
		m.forget(id)
		return ipcMessage{}, err
	}

	select {
	case msg := <-reply:
		if msg.Error != "success" {
			return msg, errIPC.Fmt(name, msg.Error)
		}

		return msg, nil
	case <-time.After(ipcRequestTimeout):
		m.forget(id)
		return ipcMessage{}, errIPCTimeout.Fmt(name)
	}
}

func (m *MPV) read(conn net.Conn) {
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 64*1024), ipcMaxLine)

	for sc.Scan() {
		var msg ipcMessage

		if err := json.Unmarshal(sc.Bytes(), &msg); err != nil {
			slog.Debug("skipping unreadable ipc message", slog.Any("error", err))
			continue
		}

		m.dispatch(msg)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.emit(Failed, errIPCClosed)
}

func (m *MPV) dispatch(msg ipcMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg.Event == "" {
		if reply, ok := m.pending[msg.RequestID]; ok {
			delete(m.pending, msg.RequestID)
			reply <- msg
		}

		return
	}

	switch msg.Event {
	case "file-loaded":
		m.emit(Ready, nil)
	case "end-file":
		if msg.Reason == "error" {
			m.emit(Failed, errPlayback)
		}
	case "property-change":
		m.applyProperty(msg)
	}
}

// applyProperty must be called with m.mu held.
func (m *MPV) applyProperty(msg ipcMessage) {
	switch msg.Name {
	case "time-pos":
		var v float64
		if json.Unmarshal(msg.Data, &v) == nil {
			m.timePos = v
		}
	case "duration":
		var v float64
		if json.Unmarshal(msg.Data, &v) == nil {
			m.duration = v
		}
	case "pause":
		var paused bool
		if json.Unmarshal(msg.Data, &paused) != nil || paused == m.paused {
			return
		}

		m.paused = paused

		if paused {
			m.emit(Paused, nil)
		} else {
			m.emit(Playing, nil)
		}
	case "eof-reached":
		var eof bool
		if json.Unmarshal(msg.Data, &eof) == nil && eof {
			m.emit(Ended, nil)
		}
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m *MPV) Load(id string, r Range) error {
	m.mu.Lock()
	started := m.cmd != nil
	m.mu.Unlock()

	if !started {
		if err := m.start(); err != nil {
			return err
		}
	}

	end := "none"
	if r.End > 0 {
		end = formatSeconds(r.End)
	}

	commands := [][]any{
		{"set_property", "pause", true},
		{"set_property", "options/start", formatSeconds(r.Start)},
		{"set_property", "options/end", end},
		{"loadfile", youtube.WatchURL(id), "replace"},
	}

	for _, c := range commands {
		if _, err := m.request(c...); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.timePos = r.Start
	m.mu.Unlock()

	return nil
}

func (m *MPV) Play() error {
	_, err := m.request("set_property", "pause", false)
	return err
}

func (m *MPV) Pause() error {
	_, err := m.request("set_property", "pause", true)
	return err
}

func (m *MPV) Seek(seconds float64) error {
	_, err := m.request("seek", seconds, "absolute")
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.timePos = seconds
	m.mu.Unlock()

	return nil
}

func (m *MPV) CurrentTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.timePos
}

func (m *MPV) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.duration
}

func (m *MPV) Events() <-chan Event {
	return m.events
}

func (m *MPV) Close() error {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return nil
	}

	m.closed = true
	conn, cmd, exited, socket := m.conn, m.cmd, m.exited, m.socket
	close(m.events)

	m.mu.Unlock()

	if conn != nil {
		m.writeMu.Lock()
		_, _ = conn.Write([]byte(`{"command": ["quit"]}` + "\n"))
		m.writeMu.Unlock()

		_ = conn.Close()
	}

	// mpv gets quitWait to exit on its own before it is killed.
	if cmd != nil && exited != nil {
		select {
		case <-exited:
		case <-time.After(m.quitWait):
			_ = cmd.Process.Kill()
			<-exited
		}
	}

	if socket != "" {
		_ = os.Remove(socket)
	}

	return nil
}
