// Package service owns the per-booking optimal-price workflow: a
// session-scoped cache that avoids redundant fetches, an edit buffer for
// manual overrides, and validation that rejects bad prices before any network
// call is made.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"math"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/store"
	"frontdesk/internal/domains/pricing/model"
	"frontdesk/internal/domains/pricing/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/inflight"

	"github.com/rs/zerolog/log"
)

const pricingMethodManual = "manual"

type Pricing interface {
	Load(ctx context.Context, bookingID string) (dto.PriceResponse, error)
	Edit(ctx context.Context, bookingID string) (dto.PriceResponse, error)
	Save(ctx context.Context, bookingID string, price float64) (dto.PriceResponse, error)
	CancelEdit(ctx context.Context, bookingID string) (dto.PriceResponse, error)
	Refresh(ctx context.Context, bookingID string) (dto.PriceResponse, error)
}

type serviceImpl struct {
	backend backend.Client
	store   *store.Store
	guard   *inflight.Guard
	cfg     *config.Config
	otel    otel.Otel

	mu      sync.Mutex
	entries map[string]model.Entry
}

func New(backendClient backend.Client, st *store.Store, guard *inflight.Guard, cfg *config.Config, otel otel.Otel) Pricing {
	return &serviceImpl{
		backend: backendClient,
		store:   st,
		guard:   guard,
		cfg:     cfg,
		otel:    otel,
		entries: make(map[string]model.Entry),
	}
}

// Load returns the booking's price entry, fetching from the backend only
// when this session has not seen a value yet. A fetch failure keeps any
// previously loaded value on display with the error attached.
func (s *serviceImpl) Load(ctx context.Context, bookingID string) (res dto.PriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry := s.entry(bookingID)
	if entry.OptimalPrice != nil {
		res.FromEntry(entry)

		return res, nil
	}

	return s.fetch(ctx, bookingID)
}

// Refresh always re-fetches, bypassing the session cache.
func (s *serviceImpl) Refresh(ctx context.Context, bookingID string) (res dto.PriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.fetch(ctx, bookingID)
}

// Edit opens the edit buffer, seeding the draft from the last known price.
// An entry with no price yet is fetched first so the buffer never opens
// blind.
func (s *serviceImpl) Edit(ctx context.Context, bookingID string) (res dto.PriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Edit")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry := s.entry(bookingID)
	if entry.OptimalPrice == nil {
		if _, err = s.fetch(ctx, bookingID); err != nil {
			return res, err
		}

		entry = s.entry(bookingID)
	}

	entry.State = model.StateEditing
	if entry.OptimalPrice != nil {
		seed := *entry.OptimalPrice
		entry.Draft = &seed
	}
	entry.LastError = ""
	s.put(entry)

	res.FromEntry(entry)

	return res, nil
}

// Save validates and persists a manual override. Validation failures and
// backend failures both leave the entry in its editing state with the typed
// value preserved, so a retry starts from what the user entered.
func (s *serviceImpl) Save(ctx context.Context, bookingID string, price float64) (res dto.PriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry := s.entry(bookingID)
	entry.State = model.StateEditing
	entry.Draft = &price

	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		entry.LastError = "price must be a finite number greater than or equal to zero"
		s.put(entry)

		res.FromEntry(entry)

		return res, failure.BadRequestFromString(entry.LastError)
	}

	if !s.guard.TryAcquire(priceKey(bookingID)) {
		res.FromEntry(entry)

		return res, failure.Conflict("another price save for this booking is still in flight")
	}
	defer s.guard.Release(priceKey(bookingID))

	entry.State = model.StateSaving
	s.put(entry)

	if err = s.backend.UpdateOptimalPrice(ctx, bookingID, price); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to save optimal price")

		entry.State = model.StateEditing
		entry.LastError = err.Error()
		s.put(entry)

		res.FromEntry(entry)

		return res, err
	}

	entry.State = model.StateLoaded
	entry.OptimalPrice = &price
	entry.PricingMethod = pricingMethodManual
	entry.Draft = nil
	entry.LastError = ""
	s.put(entry)

	s.attach(entry)

	res.FromEntry(entry)

	return res, nil
}

// CancelEdit discards the draft and reverts to the last committed value.
func (s *serviceImpl) CancelEdit(ctx context.Context, bookingID string) (res dto.PriceResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelEdit")
	defer scope.End()

	entry := s.entry(bookingID)
	entry.Draft = nil
	entry.LastError = ""

	if entry.OptimalPrice != nil {
		entry.State = model.StateLoaded
	} else {
		entry.State = model.StateUnloaded
	}

	s.put(entry)

	res.FromEntry(entry)

	return res, nil
}

func (s *serviceImpl) fetch(ctx context.Context, bookingID string) (res dto.PriceResponse, err error) {
	entry := s.entry(bookingID)
	entry.State = model.StateLoading
	s.put(entry)

	price, err := s.backend.FetchOptimalPrice(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to fetch optimal price")

		entry.LastError = err.Error()

		// Stale-while-error: an earlier value stays on display.
		if entry.OptimalPrice != nil {
			entry.State = model.StateLoaded
			s.put(entry)

			res.FromEntry(entry)

			return res, nil
		}

		entry.State = model.StateUnloaded
		s.put(entry)

		return res, err
	}

	entry.State = model.StateLoaded
	entry.OptimalPrice = price.OptimalPrice
	entry.PricingMethod = price.PricingMethod
	entry.LastError = ""
	s.put(entry)

	s.attach(entry)

	res.FromEntry(entry)

	return res, nil
}

// attach writes the committed price back onto the canonical booking record.
func (s *serviceImpl) attach(entry model.Entry) {
	booking, ok := s.store.Get(entry.BookingID)
	if !ok {
		return
	}

	booking.OptimalPrice = entry.OptimalPrice
	booking.PricingMethod = entry.PricingMethod
	s.store.Update(booking)
}

func (s *serviceImpl) entry(bookingID string) model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[bookingID]
	if !ok {
		entry = model.Entry{BookingID: bookingID, State: model.StateUnloaded}
	}

	return entry
}

func (s *serviceImpl) put(entry model.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.BookingID] = entry
}

func priceKey(bookingID string) string {
	return "price:" + bookingID
}
