package lesson

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/osutil"
)

const (
	fileExt     = ".json"
	defaultName = "lesson"

	// maxFileSize caps the size of an imported lesson file.
	maxFileSize = 4 << 20
)

var (
	errMissingID = errors.New("missing youtubeId")
	errTooLarge  = errors.New("file is too large")

	unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Marshal encodes the lesson in the exchange format.
func (l *Lesson) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(l); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Parse decodes a lesson file. Questions are sorted by time on the way in.
func Parse(data []byte) (*Lesson, error) {
	var l Lesson

	err := json.Unmarshal(data, &l)
	if err != nil {
		return nil, ErrInvalidFile.Wrap(err)
	}

	if strings.TrimSpace(l.YouTubeID) == "" {
		return nil, ErrInvalidFile.Wrap(errMissingID)
	}

	if err := l.checkTrim(); err != nil {
		return nil, ErrInvalidFile.Wrap(err)
	}

	l.SortQuestions()

	return &l, nil
}

// Read parses a lesson from r.
func Read(r io.Reader) (*Lesson, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return nil, ErrInvalidFile.Wrap(err)
	}

	if len(data) > maxFileSize {
		return nil, ErrInvalidFile.Wrap(errTooLarge)
	}

	return Parse(data)
}

// ReadFile parses the lesson stored at path.
func ReadFile(path string) (*Lesson, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Read(f)
}

// FileName derives a file system safe name for a lesson titled title.
func FileName(title string) string {
	name := unsafeChars.ReplaceAllString(strings.ToLower(title), "_")
	name = strings.Trim(name, "_")

	if name == "" {
		name = defaultName
	}

	return name + fileExt
}

// Sink receives exported lesson files.
type Sink interface {
	Save(name string, data []byte) (string, error)
}

// DirSink saves lesson files into a directory on disk.
type DirSink string

// Save writes data to name inside the directory and returns the full path.
func (d DirSink) Save(name string, data []byte) (string, error) {
	dir := string(d)
	if dir == "" {
		dir = "."
	}

	err := os.MkdirAll(dir, osutil.DirPermission)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)

	err = os.WriteFile(path, data, osutil.FilePermission)
	if err != nil {
		return "", err
	}

	return path, nil
}
