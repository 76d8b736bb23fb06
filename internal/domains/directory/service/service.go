// Package service keeps a read-through copy of the backend's hotel and room
// reference data and resolves ids to display names for search and rendering.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/directory/model"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

type Directory interface {
	Hotels(ctx context.Context) ([]model.Hotel, error)
	Rooms(ctx context.Context, hotelID string) ([]model.Room, error)
	HotelName(ctx context.Context, hotelID string) string
	RoomName(ctx context.Context, hotelID, roomID string) string
}

type serviceImpl struct {
	backend backend.Client
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel

	mu        sync.RWMutex
	hotelName map[string]string
	roomName  map[string]string
}

func New(backendClient backend.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Directory {
	return &serviceImpl{
		backend:   backendClient,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		hotelName: make(map[string]string),
		roomName:  make(map[string]string),
	}
}

func (s *serviceImpl) Hotels(ctx context.Context) (res []model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Hotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, constant.CacheKeyHotels, &res)
	if err == nil {
		s.indexHotels(res)

		return res, nil
	}

	res, err = s.backend.ListHotels(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch hotels")

		return res, fmt.Errorf("failed to fetch hotels: %w", err)
	}

	s.indexHotels(res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, constant.CacheKeyHotels, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Rooms(ctx context.Context, hotelID string) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyRooms, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		s.indexRooms(res)

		return res, nil
	}

	res, err = s.backend.ListRooms(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to fetch rooms")

		return res, fmt.Errorf("failed to fetch rooms: %w", err)
	}

	s.indexRooms(res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

// HotelName resolves a hotel id to its display name, fetching the directory
// on first use. An id the directory does not know resolves to the empty
// string so callers can fall back to the raw id.
func (s *serviceImpl) HotelName(ctx context.Context, hotelID string) string {
	s.mu.RLock()
	name, ok := s.hotelName[hotelID]
	s.mu.RUnlock()

	if ok {
		return name
	}

	if _, err := s.Hotels(ctx); err != nil {
		return constant.Empty
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hotelName[hotelID]
}

// RoomName resolves a (hotel, room) pair to the room's display name.
func (s *serviceImpl) RoomName(ctx context.Context, hotelID, roomID string) string {
	key := roomKey(hotelID, roomID)

	s.mu.RLock()
	name, ok := s.roomName[key]
	s.mu.RUnlock()

	if ok {
		return name
	}

	if _, err := s.Rooms(ctx, hotelID); err != nil {
		return constant.Empty
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roomName[key]
}

func (s *serviceImpl) indexHotels(hotels []model.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range hotels {
		s.hotelName[h.ID] = h.Name
	}
}

func (s *serviceImpl) indexRooms(rooms []model.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range rooms {
		s.roomName[roomKey(r.HotelID, r.ID)] = r.RoomName
	}
}

func roomKey(hotelID, roomID string) string {
	return hotelID + ":" + roomID
}
