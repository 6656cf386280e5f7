// Package app defines the lessons command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/config"
)

// Get retrieves the lessons app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "lessons",
		Usage: `
		Lessons turns YouTube videos into interactive lessons. Trim a video, pin
		questions to moments in it and export the result as a small JSON file that
		pauses at every question when it is played back.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a lesson from a YouTube video",
				UsageText: "lessons create [--title TITLE] [--url LINK] [--mode full|trim]",
				Flags: []cli.Flag{
					titleFlag,
					urlFlag,
					modeFlag,
					outFlag,
					durationFlag,
				},
				Action: createAction,
			},
			{
				Name:      "play",
				Usage:     "Play a lesson file",
				UsageText: "lessons play [FILE]",
				Flags: []cli.Flag{
					durationFlag,
				},
				Action: playAction,
			},
			{
				Name:      "inspect",
				Usage:     "Print the contents of a lesson file",
				UsageText: "lessons inspect FILE",
				Action:    inspectAction,
			},
			{
				Name:  "history",
				Usage: "List the lessons you exported and played",
				Flags: []cli.Flag{
					sinceFlag,
					kindFlag,
					sortFlag,
					jsonFlag,
				},
				Action: historyAction,
				Subcommands: []*cli.Command{
					{
						Name:  "delete",
						Usage: "Delete history entries",
						Flags: []cli.Flag{
							sinceFlag,
							kindFlag,
						},
						Action: deleteHistoryAction,
					},
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			backendFlag,
			debugFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
