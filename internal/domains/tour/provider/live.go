package provider

import (
	"context"
	"fmt"
	"rathh/infras/otel"
	"rathh/internal/domains/tour/model"
	"rathh/internal/domains/tour/model/dto"
	"rathh/internal/domains/tour/repository"
	"rathh/shared/constant"
	gDto "rathh/shared/dto"
)

type liveProvider struct {
	repo repository.Tour
	otel otel.Otel
}

func newLiveProvider(repo repository.Tour, otl otel.Otel) Provider {
	return &liveProvider{
		repo: repo,
		otel: otl,
	}
}

func (p *liveProvider) Search(ctx context.Context, criteria model.FilterCriteria) (tours []model.Tour, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelProviderScopeName, constant.OtelProviderScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	tours, err = p.repo.GetAll(ctx, dto.DefaultQueryParams, BuildFilter(criteria))
	if err != nil {
		return nil, fmt.Errorf("failed to search tours: %w", err)
	}

	scope.SetAttribute("result_count", len(tours))

	return tours, nil
}

// BuildFilter translates filter criteria into the named-query WHERE builder
// used by the generic repository.
func BuildFilter(criteria model.FilterCriteria) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			ArgName:  "price_min",
			Field:    model.FieldPrice,
			Value:    criteria.PriceMin,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "price_max",
			Field:    model.FieldPrice,
			Value:    criteria.PriceMax,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		},
	}

	if len(criteria.Categories) > 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategory,
			Value:    criteria.Categories,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	if len(criteria.Destinations) > 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldLocation,
			Value:    criteria.Destinations,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	if len(criteria.Durations) > 0 {
		durationFilters := []any{}

		for _, bucket := range criteria.Durations {
			durationFilters = append(durationFilters, gDto.Filter{
				Value:    durationRangeQuery(bucket),
				Operator: gDto.FilterPlainQuery,
			})
		}

		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters:  durationFilters,
		})
	}

	if criteria.StartDate != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "window_start",
			Field:    model.FieldStartDate,
			Value:    criteria.StartDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if criteria.EndDate != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "window_end",
			Field:    model.FieldEndDate,
			Value:    criteria.EndDate,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

func durationRangeQuery(bucket string) string {
	switch bucket {
	case model.DurationShort:
		return "tours.duration_days BETWEEN 1 AND 3"
	case model.DurationMedium:
		return "tours.duration_days BETWEEN 4 AND 7"
	case model.DurationLong:
		return "tours.duration_days BETWEEN 8 AND 14"
	default:
		return "tours.duration_days >= 15"
	}
}
