package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/schedule/model"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

// BuildSlots turns a day-and-facet-filtered booking set into hour buckets for
// one direction. It is a pure derivation: no side effects beyond diagnostics,
// identical inputs yield identical output. A booking whose time field is
// missing or malformed contributes no slot; tolerated data quality, never an
// error.
func BuildSlots(ctx context.Context, bookings []bookingModel.Booking, day time.Time, direction bookingModel.Direction, names NameResolver) []model.Bucket {
	byLabel := make(map[string][]model.TimeSlot)

	for _, b := range bookings {
		if !b.FallsOn(day, direction) {
			continue
		}

		raw := b.TimeFor(direction)
		if raw == "" {
			continue
		}

		parsed, err := time.Parse(constant.TimeFormat, raw)
		if err != nil {
			log.Debug().Str("booking_id", b.ID).Str("value", raw).Msg("discarding slot with malformed time")

			continue
		}

		hour, minute := parsed.Hour(), parsed.Minute()
		label := hourLabel(hour)

		slot := model.TimeSlot{
			ID:            string(direction) + "-" + b.ID,
			BookingID:     b.ID,
			Direction:     direction,
			Time:          raw,
			MinuteOfDay:   hour*60 + minute,
			ColorTag:      colorFor(direction, b.BookingStatus, b.PaymentStatus),
			CustomerID:    b.CustomerID,
			HotelID:       b.HotelID,
			HotelName:     names.HotelName(ctx, b.HotelID),
			RoomID:        b.RoomID,
			RoomName:      names.RoomName(ctx, b.HotelID, b.RoomID),
			BookingStatus: string(b.BookingStatus),
			PaymentStatus: string(b.PaymentStatus),
			NextAction:    b.BookingStatus.NextAction(),
		}

		byLabel[label] = append(byLabel[label], slot)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}

	// Labels sort lexicographically, not chronologically across am/pm. The
	// zero-padded hour prefix keeps ordering stable within each half of the
	// day, and the display contract depends on exactly this ordering.
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

// hourLabel renders a 24-hour value as a 12-hour clock label. Hours above 12
// wrap; hour 0 and hour 12 render as-is, so midnight displays as "00:00 am".
// That midnight rendering is a deliberate compatibility quirk.
func hourLabel(hour int) string {
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}

	display := hour
	if hour > 12 {
		display = hour - 12
	}

	return fmt.Sprintf("%02d:00 %s", display, suffix)
}

// colorFor applies the display-color precedence, first match wins.
func colorFor(direction bookingModel.Direction, status bookingModel.BookingStatus, payment bookingModel.PaymentStatus) model.ColorTag {
	if direction == bookingModel.DirectionCheckOut {
		switch {
		case status == bookingModel.StatusCheckedOut:
			return model.ColorGray
		case payment == bookingModel.PaymentPaid:
			return model.ColorTeal
		case payment == bookingModel.PaymentUnpaid:
			return model.ColorOrange
		default:
			return model.ColorPurple
		}
	}

	switch {
	case status == bookingModel.StatusCheckedIn:
		return model.ColorBlue
	case payment == bookingModel.PaymentPaid:
		return model.ColorGreen
	case payment == bookingModel.PaymentUnpaid:
		return model.ColorRed
	default:
		return model.ColorBlue
	}
}
