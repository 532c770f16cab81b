package provider

import (
	"context"
	"fmt"
	"rathh/config"
	"rathh/infras/otel"
	"rathh/internal/domains/tour/model"
	"rathh/shared/constant"
	"time"
)

type simulationProvider struct {
	cfg  *config.Config
	otel otel.Otel
}

func newSimulationProvider(cfg *config.Config, otl otel.Otel) Provider {
	return &simulationProvider{
		cfg:  cfg,
		otel: otl,
	}
}

// Search filters the fixture catalog in memory after an artificial delay.
// The delay selects on ctx.Done so a superseded search returns immediately.
func (p *simulationProvider) Search(ctx context.Context, criteria model.FilterCriteria) (tours []model.Tour, err error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelProviderScopeName, constant.OtelProviderScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	delay := time.Duration(p.cfg.Search.DelayMillis) * time.Millisecond

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("search cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	for _, tour := range fixtureCatalog {
		if criteria.Matches(tour) {
			tours = append(tours, tour)
		}
	}

	scope.SetAttribute("result_count", len(tours))

	return tours, nil
}
