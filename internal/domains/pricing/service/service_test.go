package service

import (
	"context"
	"math"
	"testing"

	"frontdesk/config"
	backendMocks "frontdesk/infras/backend/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/store"
	"frontdesk/internal/domains/pricing/model"
	"frontdesk/shared/failure"
	"frontdesk/shared/inflight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(v float64) *float64 {
	return &v
}

type pricingFixture struct {
	backend *backendMocks.MockClient
	store   *store.Store
	guard   *inflight.Guard
	svc     Pricing
}

func newPricingFixture(t *testing.T) *pricingFixture {
	ctrl := gomock.NewController(t)

	f := &pricingFixture{
		backend: backendMocks.NewMockClient(ctrl),
		store:   store.New(),
		guard:   inflight.New(),
	}

	f.store.ReplaceAll([]bookingModel.Booking{{ID: "b1", BookingStatus: bookingModel.StatusConfirmed}})

	f.svc = New(f.backend, f.store, f.guard, &config.Config{}, otelMocks.NewOtel())

	return f
}

func TestLoad(t *testing.T) {
	t.Run("fetches on first load and attaches the price to the booking", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{OptimalPrice: ptr(120), PricingMethod: "dynamic"}, nil)

		res, err := f.svc.Load(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, string(model.StateLoaded), res.State)
		require.NotNil(t, res.OptimalPrice)
		assert.Equal(t, 120.0, *res.OptimalPrice)
		assert.Equal(t, "dynamic", res.PricingMethod)

		booking, _ := f.store.Get("b1")
		require.NotNil(t, booking.OptimalPrice)
		assert.Equal(t, 120.0, *booking.OptimalPrice)
	})

	t.Run("skips the network once a value is cached for the session", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{OptimalPrice: ptr(120), PricingMethod: "dynamic"}, nil)

		_, err := f.svc.Load(context.Background(), "b1")
		require.NoError(t, err)

		// Second load with no further backend expectation.
		res, err := f.svc.Load(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, 120.0, *res.OptimalPrice)
	})

	t.Run("keeps the prior value on display when a refresh fails", func(t *testing.T) {
		f := newPricingFixture(t)
		gomock.InOrder(
			f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
				Return(model.OptimalPrice{OptimalPrice: ptr(120)}, nil),
			f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
				Return(model.OptimalPrice{}, failure.NetworkError(assert.AnError)),
		)

		_, err := f.svc.Load(context.Background(), "b1")
		require.NoError(t, err)

		res, err := f.svc.Refresh(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, string(model.StateLoaded), res.State)
		assert.Equal(t, 120.0, *res.OptimalPrice)
		assert.NotEmpty(t, res.LastError)
	})

	t.Run("surfaces the error when there is nothing to fall back to", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{}, failure.NetworkError(assert.AnError))

		_, err := f.svc.Load(context.Background(), "b1")

		require.Error(t, err)
		assert.Equal(t, failure.KindNetwork, failure.GetKind(err))
	})
}

func TestRefresh(t *testing.T) {
	t.Run("bypasses the session cache", func(t *testing.T) {
		f := newPricingFixture(t)
		gomock.InOrder(
			f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
				Return(model.OptimalPrice{OptimalPrice: ptr(120)}, nil),
			f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
				Return(model.OptimalPrice{OptimalPrice: ptr(135)}, nil),
		)

		_, err := f.svc.Load(context.Background(), "b1")
		require.NoError(t, err)

		res, err := f.svc.Refresh(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, 135.0, *res.OptimalPrice)
	})
}

func TestSave(t *testing.T) {
	t.Run("persists a valid override and updates the booking", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().UpdateOptimalPrice(gomock.Any(), "b1", 99.5).Return(nil)

		res, err := f.svc.Save(context.Background(), "b1", 99.5)

		require.NoError(t, err)
		assert.Equal(t, string(model.StateLoaded), res.State)
		assert.Equal(t, 99.5, *res.OptimalPrice)
		assert.Equal(t, "manual", res.PricingMethod)
		assert.Nil(t, res.Draft)

		booking, _ := f.store.Get("b1")
		require.NotNil(t, booking.OptimalPrice)
		assert.Equal(t, 99.5, *booking.OptimalPrice)
	})

	t.Run("rejects a negative price before any network call", func(t *testing.T) {
		f := newPricingFixture(t)

		res, err := f.svc.Save(context.Background(), "b1", -5)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Equal(t, string(model.StateEditing), res.State)
		require.NotNil(t, res.Draft)
		assert.Equal(t, -5.0, *res.Draft)
	})

	t.Run("rejects NaN and infinity before any network call", func(t *testing.T) {
		f := newPricingFixture(t)

		_, err := f.svc.Save(context.Background(), "b1", math.NaN())
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))

		_, err = f.svc.Save(context.Background(), "b1", math.Inf(1))
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("stays editing with the typed value when the backend refuses", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().UpdateOptimalPrice(gomock.Any(), "b1", 80.0).
			Return(failure.APIError(422, "price out of range"))

		res, err := f.svc.Save(context.Background(), "b1", 80)

		require.Error(t, err)
		assert.Equal(t, string(model.StateEditing), res.State)
		require.NotNil(t, res.Draft)
		assert.Equal(t, 80.0, *res.Draft)
		assert.NotEmpty(t, res.LastError)
	})

	t.Run("rejects a duplicate save while one is in flight", func(t *testing.T) {
		f := newPricingFixture(t)
		require.True(t, f.guard.TryAcquire("price:b1"))

		_, err := f.svc.Save(context.Background(), "b1", 50)

		require.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})
}

func TestEdit(t *testing.T) {
	t.Run("seeds the draft from the last committed price", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{OptimalPrice: ptr(120), PricingMethod: "dynamic"}, nil)

		_, err := f.svc.Load(context.Background(), "b1")
		require.NoError(t, err)

		res, err := f.svc.Edit(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, string(model.StateEditing), res.State)
		require.NotNil(t, res.Draft)
		assert.Equal(t, 120.0, *res.Draft)
		assert.Equal(t, 120.0, *res.OptimalPrice)
	})

	t.Run("fetches first when no price was loaded yet", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{OptimalPrice: ptr(75)}, nil)

		res, err := f.svc.Edit(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, string(model.StateEditing), res.State)
		require.NotNil(t, res.Draft)
		assert.Equal(t, 75.0, *res.Draft)
	})

	t.Run("surfaces the fetch error without opening the buffer", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{}, failure.NetworkError(assert.AnError)).
			Times(2)

		_, err := f.svc.Edit(context.Background(), "b1")

		require.Error(t, err)
		assert.Equal(t, failure.KindNetwork, failure.GetKind(err))

		// A plain load still sees an unloaded entry, not a half-open edit.
		_, err = f.svc.Load(context.Background(), "b1")
		require.Error(t, err)
	})
}

func TestCancelEdit(t *testing.T) {
	t.Run("reverts to the last committed value", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{OptimalPrice: ptr(120)}, nil)

		_, err := f.svc.Load(context.Background(), "b1")
		require.NoError(t, err)

		_, err = f.svc.Save(context.Background(), "b1", -1)
		require.Error(t, err)

		res, err := f.svc.CancelEdit(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, string(model.StateLoaded), res.State)
		assert.Equal(t, 120.0, *res.OptimalPrice)
		assert.Nil(t, res.Draft)
		assert.Empty(t, res.LastError)
	})

	t.Run("abandons an edit and returns to the committed price", func(t *testing.T) {
		f := newPricingFixture(t)
		f.backend.EXPECT().FetchOptimalPrice(gomock.Any(), "b1").
			Return(model.OptimalPrice{OptimalPrice: ptr(200), PricingMethod: "dynamic"}, nil)

		edit, err := f.svc.Edit(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, string(model.StateEditing), edit.State)
		require.NotNil(t, edit.Draft)
		assert.Equal(t, 200.0, *edit.Draft)

		res, err := f.svc.CancelEdit(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, string(model.StateLoaded), res.State)
		assert.Equal(t, 200.0, *res.OptimalPrice)
		assert.Equal(t, "dynamic", res.PricingMethod)
		assert.Nil(t, res.Draft)
	})

	t.Run("returns to unloaded when nothing was ever committed", func(t *testing.T) {
		f := newPricingFixture(t)

		res, err := f.svc.CancelEdit(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, string(model.StateUnloaded), res.State)
	})
}
