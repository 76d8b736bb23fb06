// Package service assembles the day schedule: it narrows the booking
// collection by day and facets, then derives colored, hour-bucketed check-in
// and check-out slots for display.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"sort"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingService "frontdesk/internal/domains/booking/service"
	"frontdesk/internal/domains/booking/store"
	"frontdesk/internal/domains/schedule/model"
	"frontdesk/internal/domains/schedule/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Schedule interface {
	GetSchedule(ctx context.Context, req dto.ScheduleRequest) (dto.ScheduleResponse, error)
}

type serviceImpl struct {
	bookings bookingService.Booking
	store    *store.Store
	names    NameResolver
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingService.Booking, st *store.Store, names NameResolver, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		bookings: bookings,
		store:    st,
		names:    names,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) GetSchedule(ctx context.Context, req dto.ScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := req.ToFilter()
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeySchedule,
		timezone.Format(filter.Day, constant.DateFormat),
		string(filter.Direction),
		filter.Search,
		filter.HotelID,
		filter.RoomID,
		filter.PaymentStatus,
		filter.BookingStatus,
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule")

		return res, nil
	}

	if s.store.Empty() {
		if err = s.bookings.Reload(ctx); err != nil {
			return res, err
		}
	}

	buckets := s.build(ctx, filter)

	res.FromBuckets(filter.Day, filter.Direction, buckets)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule to cache")
		}
	}()

	return res, nil
}

// build runs the filter and aggregation for the requested direction, or for
// both when none was requested. Each direction filters independently because
// the direction decides which date field is tested.
func (s *serviceImpl) build(ctx context.Context, filter model.Filter) []model.Bucket {
	all := s.store.All()

	if filter.Direction != "" {
		narrowed := FilterBookings(ctx, all, filter, filter.Direction, s.names)

		return BuildSlots(ctx, narrowed, filter.Day, filter.Direction, s.names)
	}

	directions := []bookingModel.Direction{bookingModel.DirectionCheckIn, bookingModel.DirectionCheckOut}

	byLabel := make(map[string][]model.TimeSlot)
	for _, direction := range directions {
		narrowed := FilterBookings(ctx, all, filter, direction, s.names)

		for _, bucket := range BuildSlots(ctx, narrowed, filter.Day, direction, s.names) {
			byLabel[bucket.Label] = append(byLabel[bucket.Label], bucket.Slots...)
		}
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	buckets := make([]model.Bucket, 0, len(labels))
	for _, label := range labels {
		slots := byLabel[label]
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].MinuteOfDay < slots[j].MinuteOfDay
		})

		buckets = append(buckets, model.Bucket{Label: label, Slots: slots})
	}

	return buckets
}
