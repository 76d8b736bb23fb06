//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/infras/redis"
	"frontdesk/shared/cache"
	"frontdesk/shared/inflight"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	bookingService "frontdesk/internal/domains/booking/service"
	"frontdesk/internal/domains/booking/store"
	directoryService "frontdesk/internal/domains/directory/service"
	pricingService "frontdesk/internal/domains/pricing/service"
	scheduleService "frontdesk/internal/domains/schedule/service"

	bookingHandler "frontdesk/internal/handlers/booking"
	directoryHandler "frontdesk/internal/handlers/directory"
	pricingHandler "frontdesk/internal/handlers/pricing"
	scheduleHandler "frontdesk/internal/handlers/schedule"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	inflight.New,
	store.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var directoryDomain = wire.NewSet(
	directoryService.New,
	provideNameResolver,
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	directoryDomain,
	scheduleDomain,
	pricingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	scheduleHandler.New,
	bookingHandler.New,
	pricingHandler.New,
	directoryHandler.New,
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
