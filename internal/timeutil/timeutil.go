// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

// Clock formats a media position in seconds as MM:SS.
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(math.Floor(seconds))

	return fmt.Sprintf("%02d:%02d", total/secondsInAMinute, total%secondsInAMinute)
}

// Precise formats a media position in seconds as MM:SS.s, for values that are
// adjusted in sub-second steps.
func Precise(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	tenths := int(math.Round(seconds * 10))
	mins := tenths / (secondsInAMinute * 10)
	rest := float64(tenths%(secondsInAMinute*10)) / 10

	return fmt.Sprintf("%02d:%04.1f", mins, rest)
}

// FromStr parses an absolute or relative date expression such as
// "2 weeks ago" or "2024-01-31".
func FromStr(s string) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}
