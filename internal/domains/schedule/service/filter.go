package service

import (
	"context"
	"strings"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/schedule/model"
)

// NameResolver maps ids to display names so free-text search can match what
// the user actually sees. The directory service satisfies it.
type NameResolver interface {
	HotelName(ctx context.Context, hotelID string) string
	RoomName(ctx context.Context, hotelID, roomID string) string
}

// FilterBookings narrows the collection to bookings matching the filter's day
// and every active facet, for one direction. Facets are conjunctive; the
// search text passes when any searchable field matches case-insensitively.
// Each direction of the same day must be filtered independently because the
// direction chooses which date field is tested.
func FilterBookings(ctx context.Context, bookings []bookingModel.Booking, filter model.Filter, direction bookingModel.Direction, names NameResolver) []bookingModel.Booking {
	res := make([]bookingModel.Booking, 0, len(bookings))

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, b := range bookings {
		if !b.FallsOn(filter.Day, direction) {
			continue
		}

		if filter.HotelID != "" && b.HotelID != filter.HotelID {
			continue
		}

		if filter.RoomID != "" && b.RoomID != filter.RoomID {
			continue
		}

		if filter.PaymentStatus != "" && !strings.EqualFold(string(b.PaymentStatus), filter.PaymentStatus) {
			continue
		}

		if filter.BookingStatus != "" && !strings.EqualFold(string(b.BookingStatus), filter.BookingStatus) {
			continue
		}

		if search != "" && !matchesSearch(ctx, b, search, names) {
			continue
		}

		res = append(res, b)
	}

	return res
}

func matchesSearch(ctx context.Context, b bookingModel.Booking, search string, names NameResolver) bool {
	fields := []string{
		b.ID,
		b.CustomerID,
		names.HotelName(ctx, b.HotelID),
		names.RoomName(ctx, b.HotelID, b.RoomID),
		string(b.PaymentStatus),
		string(b.BookingStatus),
	}

	for _, f := range fields {
		if f == "" {
			continue
		}

		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}

	return false
}
