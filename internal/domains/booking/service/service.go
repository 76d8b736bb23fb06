package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/store"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/inflight"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Reload(ctx context.Context) error
	RefreshDemo(ctx context.Context) error
}

type serviceImpl struct {
	backend backend.Client
	store   *store.Store
	guard   *inflight.Guard
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(backendClient backend.Client, st *store.Store, guard *inflight.Guard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		backend: backendClient,
		store:   st,
		guard:   guard,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.store.Empty() {
		if err = s.Reload(ctx); err != nil {
			return res, err
		}
	}

	res.FromModels(s.store.All())

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, ok := s.store.Get(id)
	if !ok {
		return res, failure.NotFound("booking")
	}

	next, err := model.ParseBookingStatus(req.Status)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if !booking.BookingStatus.CanTransitionTo(next) {
		return res, failure.InvalidTransition(fmt.Sprintf("cannot move booking from %s to %s", booking.BookingStatus, next))
	}

	if !s.guard.TryAcquire(id) {
		return res, failure.Conflict("another status update for this booking is still in flight")
	}
	defer s.guard.Release(id)

	if err = s.backend.UpdateStatus(ctx, id, next); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")

		return res, err
	}

	booking.BookingStatus = next
	s.store.Update(booking)

	go shared.InvalidateCaches(ctx, s.cache, constant.CacheKeySchedule)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Reload(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reload")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.backend.ListBookings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings")

		return fmt.Errorf("failed to fetch bookings: %w", err)
	}

	s.store.ReplaceAll(bookings)

	go shared.InvalidateCaches(ctx, s.cache, constant.CacheKeySchedule)

	return nil
}

func (s *serviceImpl) RefreshDemo(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshDemo")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.backend.SeedDemoData(ctx); err != nil {
		log.Error().Err(err).Msg("failed to seed demo data")

		return err
	}

	return s.Reload(ctx)
}
