// Package csvscorecardfx provides an fx module for a scorecard client
// backed by a CSV game log on disk.
package csvscorecardfx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/scorecard"
	"github.com/discochess/scorecard/internal/source"
	"github.com/discochess/scorecard/internal/source/cachedsource"
	"github.com/discochess/scorecard/internal/source/csvsource"
	"github.com/discochess/scorecard/internal/stats"
	"github.com/discochess/scorecard/internal/stats/logger"
)

// Config holds configuration for the CSV-backed scorecard client.
type Config struct {
	// Path is the game log CSV file. Compressed files (.gz, .zst) are
	// handled by extension.
	Path string

	// CacheTTL bounds how long a loaded dataset is reused before the
	// file is re-read. Zero disables caching.
	CacheTTL time.Duration
}

// Module provides a CSV-backed scorecard client.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("csvscorecard",
	fx.Provide(
		newStatsCollector,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("scorecard.stats"))
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *scorecard.Client
}

func newClient(p Params) (Result, error) {
	base, err := csvsource.New(p.Config.Path)
	if err != nil {
		return Result{}, err
	}

	var src source.Source = base
	if p.Config.CacheTTL > 0 {
		src = cachedsource.New(base, p.Config.CacheTTL)
	}

	client, err := scorecard.New(
		scorecard.WithSource(src),
		scorecard.WithStats(p.Collector),
		scorecard.WithLogger(p.Logger.Named("scorecard")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{Client: client}, nil
}
