package app

import "github.com/urfave/cli/v2"

var (
	titleFlag = &cli.StringFlag{
		Name:    "title",
		Aliases: []string{"t"},
		Usage:   "Title of the new lesson",
	}

	urlFlag = &cli.StringFlag{
		Name:    "url",
		Aliases: []string{"u"},
		Usage:   "YouTube watch, share, embed or shorts link of the video",
	}

	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Edit the full video or trim it first: full, trim",
	}

	outFlag = &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Directory to export lessons into (default: export.dir)",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Length of the video for the sim backend, in seconds or as a duration (e.g. 3m32s)",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include history since the given date (e.g. '2 weeks ago', '2026-01-31')",
	}

	kindFlag = &cli.StringFlag{
		Name:  "kind",
		Usage: "Only include one kind of history: export, playback",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort history by time or title",
		Value: "time",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print history as JSON",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	backendFlag = &cli.StringFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Video player backend: sim, mpv (default: media.backend)",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}
)
