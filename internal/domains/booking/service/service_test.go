package service

import (
	"context"
	"testing"

	"frontdesk/config"
	backendMocks "frontdesk/infras/backend/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/store"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
	"frontdesk/shared/inflight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	backend *backendMocks.MockClient
	cache   *cacheMocks.MockRedisCache
	store   *store.Store
	guard   *inflight.Guard
	svc     Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		backend: backendMocks.NewMockClient(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		store:   store.New(),
		guard:   inflight.New(),
	}

	// Invalidation runs in a goroutine and is best-effort, so it may or may
	// not land before the test ends.
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = New(f.backend, f.store, f.guard, &config.Config{}, f.cache, otelMocks.NewOtel())

	return f
}

func sampleBookings() []model.Booking {
	return []model.Booking{
		{
			ID:            "b1",
			HotelID:       "h1",
			RoomID:        "r1",
			CustomerID:    "c1",
			BookIn:        "2026-08-30",
			ETA:           "14:00",
			BookingStatus: model.StatusPending,
			PaymentStatus: model.PaymentUnpaid,
		},
		{
			ID:            "b2",
			HotelID:       "h1",
			RoomID:        "r2",
			CustomerID:    "c2",
			BookIn:        "2026-08-30",
			BookOut:       "2026-08-31",
			ETD:           "11:30",
			BookingStatus: model.StatusCheckedIn,
			PaymentStatus: model.PaymentPaid,
		},
	}
}

func TestGetAll(t *testing.T) {
	t.Run("loads from backend when store is empty", func(t *testing.T) {
		f := newFixture(t)
		f.backend.EXPECT().ListBookings(gomock.Any()).Return(sampleBookings(), nil)

		res, err := f.svc.GetAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, "b1", res.Bookings[0].ID)
		assert.Equal(t, "Check In", res.Bookings[0].NextAction)
		assert.Equal(t, "Check Out", res.Bookings[1].NextAction)
	})

	t.Run("serves the store without touching the backend once loaded", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReplaceAll(sampleBookings())

		res, err := f.svc.GetAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("propagates a backend failure", func(t *testing.T) {
		f := newFixture(t)
		f.backend.EXPECT().ListBookings(gomock.Any()).Return(nil, failure.NetworkError(assert.AnError))

		_, err := f.svc.GetAll(context.Background())

		require.Error(t, err)
		assert.Equal(t, failure.KindNetwork, failure.GetKind(err))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("checks in a pending booking", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReplaceAll(sampleBookings())
		f.backend.EXPECT().UpdateStatus(gomock.Any(), "b1", model.StatusCheckedIn).Return(nil)

		res, err := f.svc.UpdateStatus(context.Background(), "b1", dto.UpdateStatusRequest{Status: "CheckedIn"})

		require.NoError(t, err)
		assert.Equal(t, "CheckedIn", res.BookingStatus)
		assert.Equal(t, "Check Out", res.NextAction)

		stored, ok := f.store.Get("b1")
		require.True(t, ok)
		assert.Equal(t, model.StatusCheckedIn, stored.BookingStatus)
	})

	t.Run("rejects a transition the lifecycle does not allow", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReplaceAll(sampleBookings())

		_, err := f.svc.UpdateStatus(context.Background(), "b2", dto.UpdateStatusRequest{Status: "CheckedIn"})

		require.Error(t, err)
		assert.Equal(t, failure.KindInvalidTransition, failure.GetKind(err))
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReplaceAll(sampleBookings())

		_, err := f.svc.UpdateStatus(context.Background(), "b1", dto.UpdateStatusRequest{Status: "Teleported"})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown booking", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateStatus(context.Background(), "nope", dto.UpdateStatusRequest{Status: "CheckedIn"})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("rejects a duplicate submission while one is in flight", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReplaceAll(sampleBookings())
		require.True(t, f.guard.TryAcquire("b1"))

		_, err := f.svc.UpdateStatus(context.Background(), "b1", dto.UpdateStatusRequest{Status: "CheckedIn"})

		require.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})

	t.Run("leaves the store untouched when the backend refuses", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReplaceAll(sampleBookings())
		f.backend.EXPECT().UpdateStatus(gomock.Any(), "b1", model.StatusCheckedIn).
			Return(failure.APIError(422, "room not ready"))

		_, err := f.svc.UpdateStatus(context.Background(), "b1", dto.UpdateStatusRequest{Status: "CheckedIn"})

		require.Error(t, err)
		assert.Equal(t, failure.KindAPI, failure.GetKind(err))

		stored, _ := f.store.Get("b1")
		assert.Equal(t, model.StatusPending, stored.BookingStatus)
	})

	t.Run("releases the guard after a failure so a retry can proceed", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReplaceAll(sampleBookings())
		gomock.InOrder(
			f.backend.EXPECT().UpdateStatus(gomock.Any(), "b1", model.StatusCheckedIn).Return(failure.NetworkError(assert.AnError)),
			f.backend.EXPECT().UpdateStatus(gomock.Any(), "b1", model.StatusCheckedIn).Return(nil),
		)

		_, err := f.svc.UpdateStatus(context.Background(), "b1", dto.UpdateStatusRequest{Status: "CheckedIn"})
		require.Error(t, err)

		_, err = f.svc.UpdateStatus(context.Background(), "b1", dto.UpdateStatusRequest{Status: "CheckedIn"})
		require.NoError(t, err)
	})
}

func TestRefreshDemo(t *testing.T) {
	t.Run("seeds then reloads", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.backend.EXPECT().SeedDemoData(gomock.Any()).Return(nil),
			f.backend.EXPECT().ListBookings(gomock.Any()).Return(sampleBookings(), nil),
		)

		err := f.svc.RefreshDemo(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, f.store.Len())
	})

	t.Run("stops when seeding fails", func(t *testing.T) {
		f := newFixture(t)
		f.backend.EXPECT().SeedDemoData(gomock.Any()).Return(failure.NetworkError(assert.AnError))

		err := f.svc.RefreshDemo(context.Background())

		require.Error(t, err)
		assert.True(t, f.store.Empty())
	})
}
