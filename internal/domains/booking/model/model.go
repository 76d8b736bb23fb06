package model

import (
	"fmt"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EntityName = "booking"
)

type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusConfirmed  BookingStatus = "Confirmed"
	StatusCheckedIn  BookingStatus = "CheckedIn"
	StatusCheckedOut BookingStatus = "CheckedOut"
	StatusCancelled  BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// statusTransitions is the lifecycle table. Only the forward path is ever
// offered: a pending or confirmed booking can check in, a checked-in booking
// can check out. Cancellation happens outside this service, so CheckedOut and
// Cancelled allow nothing.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusCheckedIn},
	StatusConfirmed:  {StatusCheckedIn},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := statusTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := statusTransitions[s]
	if !exists {
		return false
	}

	for _, t := range allowed {
		if t == target {
			return true
		}
	}

	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := statusTransitions[s]
	if !exists {
		return true
	}

	return len(allowed) == 0
}

// NextAction names the single action the desk can offer for this status, or
// the empty string when none exists.
func (s BookingStatus) NextAction() string {
	switch s {
	case StatusPending, StatusConfirmed:
		return "Check In"
	case StatusCheckedIn:
		return "Check Out"
	default:
		return ""
	}
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}

	return status, nil
}

type Direction string

const (
	DirectionCheckIn  Direction = "checkin"
	DirectionCheckOut Direction = "checkout"
)

// ParseDirection converts a string to a Direction, returning an error if invalid.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionCheckIn:
		return DirectionCheckIn, nil
	case DirectionCheckOut:
		return DirectionCheckOut, nil
	default:
		return "", fmt.Errorf("invalid direction: %s", s)
	}
}

// Booking mirrors the backend record. Date and time fields stay raw strings:
// source data may be malformed or absent and is tolerated by exclusion, never
// by rejecting the whole record.
type Booking struct {
	ID            string        `json:"id"`
	HotelID       string        `json:"hotelId"`
	RoomID        string        `json:"roomId"`
	CustomerID    string        `json:"customerId"`
	BookIn        string        `json:"bookIn"`
	BookOut       string        `json:"bookOut"`
	ETA           string        `json:"eta"`
	ETD           string        `json:"etd"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	OptimalPrice  *float64      `json:"optimalPrice,omitempty"`
	PricingMethod string        `json:"pricingMethod,omitempty"`
}

// DateFor returns the raw calendar-date field relevant to the direction:
// bookIn for check-ins, bookOut for check-outs.
func (b Booking) DateFor(direction Direction) string {
	if direction == DirectionCheckOut {
		return b.BookOut
	}

	return b.BookIn
}

// TimeFor returns the raw time-of-day field relevant to the direction: eta
// for check-ins, etd for check-outs.
func (b Booking) TimeFor(direction Direction) string {
	if direction == DirectionCheckOut {
		return b.ETD
	}

	return b.ETA
}

// FallsOn reports whether the booking's date field for the direction is
// calendar-equal to day in the application timezone. A date that fails to
// parse excludes the booking; it is a data-quality tolerance, not an error.
func (b Booking) FallsOn(day time.Time, direction Direction) bool {
	raw := b.DateFor(direction)
	if raw == "" {
		return false
	}

	parsed, err := timezone.Parse(constant.DateFormat, raw)
	if err != nil {
		log.Debug().Str("booking_id", b.ID).Str("value", raw).Msg("excluding booking with malformed date")

		return false
	}

	return timezone.SameDay(parsed, day)
}
