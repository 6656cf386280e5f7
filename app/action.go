package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/creator"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/authoring"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/config"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notice"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notify"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/pathutil"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/playback"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/ui"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/youtube"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/player"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/store"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/summary"
)

const (
	envNoColor        = "NO_COLOR"
	envLessonsNoColor = "LESSONS_NO_COLOR"
)

var errFileRequired = errors.New("pass the path to a lesson file")

// logCloser releases the log file once the command has run.
var logCloser io.Closer

// loadConfig reads the config file and the command line, then applies the
// display settings.
func loadConfig(ctx *cli.Context, opts ...config.Option) (*config.Config, error) {
	opts = append([]config.Option{
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	}, opts...)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.Display.NoColor {
		ui.DisableStyling()
	}

	return cfg, nil
}

// openHistory opens the history store. History is optional: when it cannot be
// opened the command carries on without it.
func openHistory() (*store.Client, *store.History) {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		pterm.Warning.Printfln("history is disabled: %s", err)
		slog.Warn("unable to open history", slog.Any("error", err))

		return nil, nil
	}

	return db, store.NewHistory(db)
}

func closeDB(db *store.Client) {
	if db != nil {
		_ = db.Close()
	}
}

// createAction handles the create command which opens the lesson editor.
func createAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, config.WithCreatePrompt())
	if err != nil {
		return err
	}

	mode := authoring.ModeNone
	if cfg.CLI.Mode != "" {
		mode, err = authoring.ParseMode(cfg.CLI.Mode)
		if err != nil {
			return err
		}
	}

	mediaPlayer, err := newPlayer(ctx.Context, cfg, youtube.ExtractID(cfg.CLI.URL))
	if err != nil {
		return err
	}

	defer mediaPlayer.Close()

	db, history := openHistory()
	defer closeDB(db)

	opts := authoring.Options{
		Board:        notice.NewBoard(cfg.Notices.Timeout),
		PollInterval: cfg.Player.PollInterval,
		ResetDelay:   cfg.Export.ResetDelay,
		NudgeStep:    cfg.Editor.NudgeStep,
		EndMargin:    cfg.Player.EndEpsilon,
	}

	if history != nil {
		opts.Recorder = history
	}

	ctl := authoring.New(mediaPlayer, opts)

	m := creator.New(ctl, mediaPlayer.Events(), creator.Options{
		Sink:     lesson.DirSink(cfg.Export.Dir),
		Style:    ui.NewStyle(cfg.Display.DarkTheme, cfg.Display.NoColor),
		Title:    cfg.CLI.Title,
		Link:     cfg.CLI.URL,
		Mode:     mode,
		SeekStep: cfg.Player.SeekStep,
	})

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()

	return err
}

// playAction handles the play command which plays a lesson file.
func playAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, config.WithPlayPrompt())
	if err != nil {
		return err
	}

	var id string

	// The player reports unreadable files itself and asks for another one.
	if l, err := lesson.ReadFile(cfg.CLI.File); err == nil {
		id = l.YouTubeID
	}

	mediaPlayer, err := newPlayer(ctx.Context, cfg, id)
	if err != nil {
		return err
	}

	defer mediaPlayer.Close()

	db, history := openHistory()
	defer closeDB(db)

	opts := playback.Options{
		Board:        notice.NewBoard(cfg.Notices.Timeout),
		Notifier:     notify.New(cfg.Notifications.Enabled, cfg.Notifications.Sound),
		PollInterval: cfg.Player.PollInterval,
		EndEpsilon:   cfg.Player.EndEpsilon,
		SeekStep:     cfg.Player.SeekStep,
	}

	if history != nil {
		opts.Recorder = history
	}

	ctl := playback.New(mediaPlayer, opts)

	m := player.New(ctl, mediaPlayer.Events(), player.Options{
		Style: ui.NewStyle(cfg.Display.DarkTheme, cfg.Display.NoColor),
		File:  cfg.CLI.File,
	})

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

// inspectAction handles the inspect command which prints a lesson file and
// any reason it could not be exported as is.
func inspectAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.CLI.File == "" {
		return errFileRequired
	}

	l, err := lesson.ReadFile(cfg.CLI.File)
	if err != nil {
		return err
	}

	summary.Describe(l, config.Stdout)

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf("config: %s\n", pathutil.ConfigFilePath())
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR or LESSONS_NO_COLOR is set
	for _, env := range []string{envNoColor, envLessonsNoColor} {
		if _, exists := os.LookupEnv(env); exists {
			ui.DisableStyling()
		}
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	logger, closer := newLogger(pathutil.LogFilePath(), ctx.Bool("debug"))
	slog.SetDefault(logger)

	logCloser = closer

	slog.InfoContext(ctx.Context, "starting lessons",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting lessons")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
