//go:build wireinject
// +build wireinject

package di

import (
	"rathh/config"
	"rathh/infras/jwt"
	"rathh/infras/kafka"
	"rathh/infras/otel"
	"rathh/infras/postgres"
	"rathh/infras/redis"
	"rathh/infras/s3"
	"rathh/shared/kv"
	"rathh/transport/http"
	"rathh/transport/http/middleware"
	"rathh/transport/http/router"

	authService "rathh/internal/domains/auth/service"
	bookingRepository "rathh/internal/domains/booking/repository"
	bookingService "rathh/internal/domains/booking/service"
	checkoutRepository "rathh/internal/domains/checkout/repository"
	checkoutService "rathh/internal/domains/checkout/service"
	tourProvider "rathh/internal/domains/tour/provider"
	tourRepository "rathh/internal/domains/tour/repository"
	tourService "rathh/internal/domains/tour/service"

	authHandler "rathh/internal/handlers/auth"
	bookingHandler "rathh/internal/handlers/booking"
	checkoutHandler "rathh/internal/handlers/checkout"
	healthHandler "rathh/internal/handlers/health"
	tourHandler "rathh/internal/handlers/tour"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewClientIdentity,
)

var sharedHelpers = wire.NewSet(
	kv.NewRedisStore,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourProvider.New,
	tourService.New,
)

var checkoutDomain = wire.NewSet(
	checkoutRepository.NewCheckoutRepository,
	checkoutService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	tourDomain,
	checkoutDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	tourHandler.New,
	checkoutHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
