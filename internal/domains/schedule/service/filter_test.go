package service

import (
	"context"
	"testing"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/schedule/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []bookingModel.Booking {
	return []bookingModel.Booking{
		{
			ID:            "b1",
			HotelID:       "h1",
			RoomID:        "r1",
			CustomerID:    "alice",
			BookIn:        "2025-03-05",
			BookOut:       "2025-03-07",
			BookingStatus: bookingModel.StatusConfirmed,
			PaymentStatus: bookingModel.PaymentPaid,
		},
		{
			ID:            "b2",
			HotelID:       "h2",
			RoomID:        "r9",
			CustomerID:    "bob",
			BookIn:        "2025-03-05",
			BookingStatus: bookingModel.StatusPending,
			PaymentStatus: bookingModel.PaymentUnpaid,
		},
		{
			ID:            "b3",
			HotelID:       "h1",
			RoomID:        "r2",
			CustomerID:    "carol",
			BookIn:        "2025-03-06",
			BookingStatus: bookingModel.StatusConfirmed,
			PaymentStatus: bookingModel.PaymentPaid,
		},
	}
}

func TestFilterBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("matches the day via the direction's date field", func(t *testing.T) {
		filter := model.Filter{Day: day(t, "2025-03-05")}

		res := FilterBookings(ctx, filterFixture(), filter, bookingModel.DirectionCheckIn, names())

		require.Len(t, res, 2)
		assert.Equal(t, "b1", res[0].ID)
		assert.Equal(t, "b2", res[1].ID)
	})

	t.Run("checkout direction tests bookOut", func(t *testing.T) {
		filter := model.Filter{Day: day(t, "2025-03-07")}

		res := FilterBookings(ctx, filterFixture(), filter, bookingModel.DirectionCheckOut, names())

		require.Len(t, res, 1)
		assert.Equal(t, "b1", res[0].ID)
	})

	t.Run("facets are conjunctive", func(t *testing.T) {
		filter := model.Filter{
			Day:           day(t, "2025-03-05"),
			HotelID:       "h1",
			PaymentStatus: "Paid",
		}

		res := FilterBookings(ctx, filterFixture(), filter, bookingModel.DirectionCheckIn, names())

		require.Len(t, res, 1)
		assert.Equal(t, "b1", res[0].ID)
	})

	t.Run("a facet with no matches yields an empty set, not an error", func(t *testing.T) {
		filter := model.Filter{
			Day:           day(t, "2025-03-05"),
			BookingStatus: "Cancelled",
		}

		res := FilterBookings(ctx, filterFixture(), filter, bookingModel.DirectionCheckIn, names())

		assert.Empty(t, res)
	})

	t.Run("search matches the resolved hotel name case-insensitively", func(t *testing.T) {
		filter := model.Filter{
			Day:    day(t, "2025-03-05"),
			Search: "grand PALM",
		}

		res := FilterBookings(ctx, filterFixture(), filter, bookingModel.DirectionCheckIn, names())

		require.Len(t, res, 1)
		assert.Equal(t, "b1", res[0].ID)
	})

	t.Run("search matches any of the searchable fields", func(t *testing.T) {
		filter := model.Filter{
			Day:    day(t, "2025-03-05"),
			Search: "bob",
		}

		res := FilterBookings(ctx, filterFixture(), filter, bookingModel.DirectionCheckIn, names())

		require.Len(t, res, 1)
		assert.Equal(t, "b2", res[0].ID)
	})

	t.Run("search and facets combine", func(t *testing.T) {
		filter := model.Filter{
			Day:     day(t, "2025-03-05"),
			Search:  "unpaid",
			HotelID: "h1",
		}

		res := FilterBookings(ctx, filterFixture(), filter, bookingModel.DirectionCheckIn, names())

		assert.Empty(t, res)
	})

	t.Run("a malformed booking date excludes the record", func(t *testing.T) {
		bookings := []bookingModel.Booking{{ID: "b1", BookIn: "05/03/2025"}}
		filter := model.Filter{Day: day(t, "2025-03-05")}

		res := FilterBookings(ctx, bookings, filter, bookingModel.DirectionCheckIn, names())

		assert.Empty(t, res)
	})
}
