package config

import (
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Title    string
	URL      string
	Mode     string
	File     string
	Out      string
	Backend  string
	Duration string
	Since    string
	Kind     string
	Sort     string
	JSON     bool
	NoColor  bool
	Debug    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Title:    ctx.String("title"),
			URL:      ctx.String("url"),
			Mode:     ctx.String("mode"),
			File:     ctx.Args().First(),
			Out:      ctx.String("out"),
			Backend:  ctx.String("backend"),
			Duration: ctx.String("duration"),
			Since:    ctx.String("since"),
			Kind:     ctx.String("kind"),
			Sort:     ctx.String("sort"),
			JSON:     ctx.Bool("json"),
			NoColor:  ctx.Bool("no-color"),
			Debug:    ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	c.CLI.Title = strings.TrimSpace(opts.Title)
	c.CLI.URL = strings.TrimSpace(opts.URL)
	c.CLI.File = opts.File
	c.CLI.JSON = opts.JSON
	c.CLI.Debug = opts.Debug

	c.Display.NoColor = opts.NoColor || noColorEnv()

	if opts.Out != "" {
		c.Export.Dir = opts.Out
	}

	if opts.Backend != "" {
		c.Media.Backend = opts.Backend
	}

	if opts.Duration != "" {
		dur, err := parseDuration(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Fmt(err)
		}

		c.CLI.Duration = dur
	}

	if err := applyCLIChoices(c, opts); err != nil {
		return err
	}

	if opts.Since != "" {
		since, err := timeutil.FromStr(opts.Since)
		if err != nil {
			return errInvalidSince.Fmt(opts.Since).Wrap(err)
		}

		c.CLI.Since = since
	}

	return nil
}

// applyCLIChoices validates flags that accept a fixed set of values.
func applyCLIChoices(c *Config, opts CLIOptions) error {
	mode := strings.ToLower(strings.TrimSpace(opts.Mode))
	if mode != "" && mode != "full" && mode != "trim" {
		return errInvalidMode.Fmt(opts.Mode)
	}

	c.CLI.Mode = mode

	kind := strings.ToLower(strings.TrimSpace(opts.Kind))
	if kind != "" && kind != "export" && kind != "playback" {
		return errInvalidKind.Fmt(opts.Kind)
	}

	c.CLI.Kind = kind

	sort := strings.ToLower(strings.TrimSpace(opts.Sort))
	if sort == "" {
		sort = "time"
	}

	if sort != "time" && sort != "title" {
		return errInvalidSort.Fmt(opts.Sort)
	}

	c.CLI.Sort = sort

	return nil
}

func noColorEnv() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	_, appNoColor := os.LookupEnv(envPrefix + "_NO_COLOR")

	return noColor || appNoColor
}

// parseDuration parses a Go duration, or a plain number of seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	secs, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, err
	}

	return secs, nil
}
