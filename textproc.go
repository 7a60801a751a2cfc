package textproc

import (
	"context"

	"github.com/w-h-a/textproc/internal/service/analytics"
	"github.com/w-h-a/textproc/internal/service/orchestrate"
	"github.com/w-h-a/textproc/processor"
	"github.com/w-h-a/textproc/provider"
	"github.com/w-h-a/textproc/store"
)

// App bundles the processing and analytics services behind one
// surface for transports to call. It is constructed once at process
// start with an explicit provider and store, and discarded (store and
// all) at process end.
type App struct {
	orchestrator *orchestrate.Service
	analytics    *analytics.Service
}

type Health struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

func (a *App) Process(ctx context.Context, text string, task provider.Task) (processor.Record, error) {
	return a.orchestrator.Process(ctx, text, task)
}

func (a *App) History(ctx context.Context) ([]processor.Record, error) {
	return a.orchestrator.History(ctx)
}

func (a *App) Lookup(ctx context.Context, id string) (processor.Record, bool, error) {
	return a.orchestrator.Lookup(ctx, id)
}

func (a *App) Stats(ctx context.Context) (analytics.Stats, error) {
	return a.analytics.Stats(ctx)
}

func (a *App) RecentActivity(ctx context.Context, windowHours float64) ([]processor.Record, error) {
	return a.analytics.RecentActivity(ctx, windowHours)
}

func (a *App) SentimentDistribution(ctx context.Context) (map[string]int, error) {
	return a.analytics.SentimentDistribution(ctx)
}

func (a *App) Health(ctx context.Context) Health {
	return Health{
		Status:   "healthy",
		Provider: a.orchestrator.ProviderName(),
	}
}

func New(p provider.Provider, st store.Store) *App {
	orchestrator := orchestrate.New(p, st)

	analytics := analytics.New(st)

	app := &App{
		orchestrator: orchestrator,
		analytics:    analytics,
	}

	return app
}
