package config

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm/putils"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/youtube"
)

var (
	errBlankTitle  = errors.New("enter a lesson title")
	errBadLink     = errors.New("enter a YouTube watch, share, embed or shorts link")
	errMissingFile = errors.New("file does not exist")
)

// WithCreatePrompt returns an Option that asks for the lesson title, link and
// editing mode when they were not passed on the command line.
func WithCreatePrompt() Option {
	return func(c *Config) error {
		if c.CLI.Title != "" && c.CLI.URL != "" && c.CLI.Mode != "" {
			return nil
		}

		_ = putils.BulletListFromString(`Answer the prompts below to start a new lesson.
Pass --title, --url and --mode to skip them next time.`, " ").
			Render()

		var fields []huh.Field

		if c.CLI.Title == "" {
			fields = append(fields, huh.NewInput().
				Title("Lesson title").
				Value(&c.CLI.Title).
				Validate(validateTitle))
		}

		if c.CLI.URL == "" {
			fields = append(fields, huh.NewInput().
				Title("YouTube link").
				Placeholder("https://youtu.be/...").
				Value(&c.CLI.URL).
				Validate(validateLink))
		}

		if c.CLI.Mode == "" {
			fields = append(fields, huh.NewSelect[string]().
				Title("What should the lesson play?").
				Options(
					huh.NewOption("The full video", "full"),
					huh.NewOption("A trimmed part of the video", "trim"),
				).
				Value(&c.CLI.Mode))
		}

		err := huh.NewForm(huh.NewGroup(fields...)).Run()
		if err != nil {
			return err
		}

		c.CLI.Title = strings.TrimSpace(c.CLI.Title)
		c.CLI.URL = strings.TrimSpace(c.CLI.URL)

		return nil
	}
}

// WithPlayPrompt returns an Option that asks for the lesson file when none was
// passed on the command line.
func WithPlayPrompt() Option {
	return func(c *Config) error {
		if c.CLI.File != "" {
			return nil
		}

		return huh.NewInput().
			Title("Lesson file").
			Placeholder("lesson.json").
			Value(&c.CLI.File).
			Validate(validateFile).
			Run()
	}
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errBlankTitle
	}

	return nil
}

func validateLink(s string) error {
	if youtube.ExtractID(s) == "" {
		return errBadLink
	}

	return nil
}

func validateFile(s string) error {
	if _, err := os.Stat(strings.TrimSpace(s)); err != nil {
		return errMissingFile
	}

	return nil
}
