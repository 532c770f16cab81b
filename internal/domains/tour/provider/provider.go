package provider

//go:generate go run go.uber.org/mock/mockgen -source=./provider.go -destination=../mocks/provider_mock.go -package=mocks

import (
	"context"
	"rathh/config"
	"rathh/infras/otel"
	"rathh/internal/domains/tour/model"
	"rathh/internal/domains/tour/repository"
)

// Provider produces the tours matching a set of filter criteria. Both
// implementations honor ctx cancellation, so the caller can supersede an
// in-flight search by cancelling its context.
type Provider interface {
	Search(ctx context.Context, criteria model.FilterCriteria) ([]model.Tour, error)
}

// New selects the provider implementation from configuration: a fixture
// catalog behind an artificial delay, or the Postgres-backed catalog.
func New(cfg *config.Config, repo repository.Tour, otl otel.Otel) Provider {
	if cfg.Search.Mode == config.SearchModeLive {
		return newLiveProvider(repo, otl)
	}

	return newSimulationProvider(cfg, otl)
}
