// Package report prints command outcomes to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Error prints err. Joined errors are printed one per line.
func Error(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			pterm.Error.Println(e)
		}

		return
	}

	pterm.Error.Println(err)
}

// Quit prints err and exits with status 1.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}
