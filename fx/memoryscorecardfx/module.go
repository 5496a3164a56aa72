// Package memoryscorecardfx provides an fx module for an in-memory scorecard client.
// Useful for testing.
package memoryscorecardfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/scorecard"
	"github.com/discochess/scorecard/internal/source/memsource"
	"github.com/discochess/scorecard/internal/stats"
	"github.com/discochess/scorecard/internal/stats/logger"
)

// Module provides an in-memory scorecard client for testing.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("memoryscorecard",
	fx.Provide(
		newStatsCollector,
		newMemSource,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("scorecard.stats"))
}

// newMemSource is provided so tests can seed records via fx.Populate.
func newMemSource() *memsource.Source {
	return memsource.New()
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Source    *memsource.Source
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *scorecard.Client
}

func newClient(p Params) (Result, error) {
	client, err := scorecard.New(
		scorecard.WithSource(p.Source),
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
