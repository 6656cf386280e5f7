package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/config"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/youtube"
)

const lookupTimeout = 10 * time.Second

// durationLookup finds the length of a YouTube video in seconds.
type durationLookup interface {
	Duration(ctx context.Context, id string) (float64, error)
}

// newPlayer returns the configured media backend for the video with the given
// id. id may be empty when the video is not known yet.
func newPlayer(ctx context.Context, cfg *config.Config, id string) (media.Player, error) {
	var lookup durationLookup
	if cfg.YouTube.APIKey != "" {
		lookup = youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.VideosURL)
	}

	return media.New(cfg.Media.Backend, media.Options{
		Command:  cfg.Media.Command,
		Duration: resolveDuration(ctx, cfg, lookup, id),
	})
}

// resolveDuration decides how long the simulated video lasts: --duration
// first, then the YouTube Data API, then media.default_duration. Real players
// report their own duration, so it is zero for them.
func resolveDuration(
	ctx context.Context,
	cfg *config.Config,
	lookup durationLookup,
	id string,
) float64 {
	if cfg.Media.Backend != media.BackendSim && cfg.Media.Backend != "" {
		return 0
	}

	if cfg.CLI.Duration > 0 {
		return cfg.CLI.Duration.Seconds()
	}

	if lookup != nil && id != "" {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		d, err := lookup.Duration(ctx, id)
		if err == nil && d > 0 {
			return d
		}

		slog.Warn("unable to look up video duration",
			slog.String("video_id", id),
			slog.Any("error", err),
		)
	}

	return cfg.Media.DefaultDuration.Seconds()
}
