package service

import (
	"context"
	"errors"
	"fmt"
	"rathh/config"
	"rathh/infras/otel"
	"rathh/infras/s3"
	"rathh/internal/domains/tour/model"
	"rathh/internal/domains/tour/model/dto"
	"rathh/internal/domains/tour/provider"
	"rathh/internal/domains/tour/repository"
	"rathh/shared"
	"rathh/shared/constant"
	gDto "rathh/shared/dto"
	"rathh/shared/failure"
	"rathh/shared/kv"

	"github.com/rs/zerolog/log"
)

const (
	cacheSearchTours = "cache:tours:search"

	slotSearchParams = "search:params"
)

type Tour interface {
	Search(ctx context.Context, req dto.SearchToursRequest) (dto.SearchToursResponse, error)
	SaveSearchParams(ctx context.Context, clientID string, req dto.SearchParams) error
	GetSearchParams(ctx context.Context, clientID string) (dto.SearchParams, error)
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	provider provider.Provider
	repo     repository.Tour
	cfg      *config.Config
	store    kv.Store
	otel     otel.Otel
	s3       s3.S3
}

func New(prov provider.Provider, repo repository.Tour, cfg *config.Config, store kv.Store, otl otel.Otel, s3Client s3.S3) Tour {
	return &serviceImpl{
		provider: prov,
		repo:     repo,
		cfg:      cfg,
		store:    store,
		otel:     otl,
		s3:       s3Client,
	}
}

// Search runs the composed criteria through the configured provider and
// returns the results ordered by the requested sort key. Identical criteria
// are served from cache for a short while.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchToursRequest) (res dto.SearchToursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	floor := s.cfg.Search.PriceFloor
	ceiling := s.cfg.Search.PriceCeiling

	criteria := req.ToCriteria()
	criteria.Clamp(floor, ceiling)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchTours, gDto.QueryParams{SortBy: req.SortBy}, provider.BuildFilter(criteria))

	if cacheErr := s.store.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour search")

		return res, nil
	}

	tours, err := s.provider.Search(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("failed to search tours")

		return res, fmt.Errorf("failed to search tours: %w", err)
	}

	sorted := model.Sort(tours, req.SortBy)

	res.FromModels(sorted, criteria.ActiveFilterCount(floor, ceiling))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.store.Put(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour search to cache")
		}
	}()

	return res, nil
}

// SaveSearchParams writes the client's search handoff slot. The slot is a
// whole-record replacement, last write wins.
func (s *serviceImpl) SaveSearchParams(ctx context.Context, clientID string, req dto.SearchParams) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveSearchParams")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(slotSearchParams, clientID)

	if err = s.store.Put(ctx, key, req, 0); err != nil {
		log.Error().Err(err).Msg("failed to save search params")

		return fmt.Errorf("failed to save search params: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetSearchParams(ctx context.Context, clientID string) (res dto.SearchParams, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSearchParams")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(slotSearchParams, clientID)

	err = s.store.Get(ctx, key, &res)
	if errors.Is(err, kv.Nil) {
		return res, failure.NotFound("search params not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get search params")

		return res, fmt.Errorf("failed to get search params: %w", err)
	}

	return res, nil
}

// UploadImage stores a tour image in S3 and records its URL on the tour row.
// A replaced image is removed from the bucket in the background.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	tour, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour")

		return res, fmt.Errorf("failed to get tour: %w", err)
	}

	if tour.ID == constant.Empty {
		return res, failure.NotFound("tour not found") //nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(struct {
		ImageURL string `db:"image_url"`
	}{ImageURL: url}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to record tour image URL")

		return res, fmt.Errorf("failed to record tour image URL: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.store, cacheSearchTours)

		if tour.ImageURL == constant.Empty {
			return
		}

		objectName := s.s3.GetObjectNameFromURL(bucketName, tour.ImageURL)
		if objectName == constant.Empty {
			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete replaced tour image")
		}
	}()

	res.FromModel(tour.ID, url)

	return res, nil
}
