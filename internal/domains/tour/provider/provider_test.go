package provider

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rathh/config"
	"rathh/infras/otel/mocks"
	"rathh/internal/domains/tour/model"
)

func simulationConfig(delayMillis int) *config.Config {
	cfg := &config.Config{}
	cfg.Search.Mode = config.SearchModeSimulation
	cfg.Search.DelayMillis = delayMillis
	cfg.Search.PriceFloor = 0
	cfg.Search.PriceCeiling = 5000

	return cfg
}

func TestSimulationSearchReturnsFullCatalog(t *testing.T) {
	prov := newSimulationProvider(simulationConfig(0), mocks.NewOtel())

	tours, err := prov.Search(context.Background(), model.NewFilterCriteria(0, 5000))

	assert.NoError(t, err)
	assert.Len(t, tours, len(fixtureCatalog))
}

func TestSimulationSearchAppliesCriteria(t *testing.T) {
	prov := newSimulationProvider(simulationConfig(0), mocks.NewOtel())

	criteria := model.NewFilterCriteria(0, 5000)
	criteria.ToggleCategory("festival")

	tours, err := prov.Search(context.Background(), criteria)

	assert.NoError(t, err)
	assert.NotEmpty(t, tours)

	for _, tour := range tours {
		assert.NotNil(t, tour.Category)
		assert.Equal(t, "festival", *tour.Category)
	}
}

func TestSimulationSearchHonorsCancellation(t *testing.T) {
	prov := newSimulationProvider(simulationConfig(5000), mocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	tours, err := prov.Search(ctx, model.NewFilterCriteria(0, 5000))

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, tours)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSimulationSearchWaitsForDelay(t *testing.T) {
	prov := newSimulationProvider(simulationConfig(30), mocks.NewOtel())

	start := time.Now()
	_, err := prov.Search(context.Background(), model.NewFilterCriteria(0, 5000))

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestBuildFilter(t *testing.T) {
	criteria := model.NewFilterCriteria(0, 5000)
	criteria.ToggleCategory("culture")
	criteria.ToggleDestination("Warangal, Telangana")
	criteria.ToggleDuration(model.DurationMedium)
	criteria.SetPriceMin(500, 0)
	criteria.SetPriceMax(3000, 5000)
	criteria.StartDate = "2026-03-01"
	criteria.EndDate = "2026-03-31"

	group := BuildFilter(criteria)
	where, args := group.GetWhereClause()

	assert.Contains(t, where, "tours.price >= :price_min")
	assert.Contains(t, where, "tours.price <= :price_max")
	assert.Contains(t, where, "tours.category IN")
	assert.Contains(t, where, "tours.location IN")
	assert.Contains(t, where, "tours.duration_days BETWEEN 4 AND 7")
	assert.Contains(t, where, "tours.start_date >= :window_start")
	assert.Contains(t, where, "tours.end_date <= :window_end")

	assert.Equal(t, 500, args["price_min"])
	assert.Equal(t, 3000, args["price_max"])
	assert.Equal(t, "2026-03-01", args["window_start"])
	assert.Equal(t, "2026-03-31", args["window_end"])
}

func TestBuildFilterEmptyAxesOmitted(t *testing.T) {
	group := BuildFilter(model.NewFilterCriteria(0, 5000))
	where, _ := group.GetWhereClause()

	assert.NotContains(t, where, "category")
	assert.NotContains(t, where, "location")
	assert.NotContains(t, where, "duration_days")
	assert.NotContains(t, where, "date")
	// only the two price bounds remain
	assert.Equal(t, 2, strings.Count(where, ":"))
}
