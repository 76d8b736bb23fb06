package model

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
)

const (
	EntityName = "schedule"
)

// ColorTag is the display color for a slot, derived from booking and payment
// status by a fixed precedence per direction.
type ColorTag string

const (
	ColorBlue   ColorTag = "blue"
	ColorGreen  ColorTag = "green"
	ColorRed    ColorTag = "red"
	ColorGray   ColorTag = "gray"
	ColorTeal   ColorTag = "teal"
	ColorOrange ColorTag = "orange"
	ColorPurple ColorTag = "purple"
)

// TimeSlot is one booking's check-in or check-out event on the selected day.
// It is derived on demand and never persisted; the booking it references
// stays owned by the booking collection.
type TimeSlot struct {
	ID            string                 `json:"id"`
	BookingID     string                 `json:"booking_id"`
	Direction     bookingModel.Direction `json:"direction"`
	Time          string                 `json:"time"`
	MinuteOfDay   int                    `json:"minute_of_day"`
	ColorTag      ColorTag               `json:"color_tag"`
	CustomerID    string                 `json:"customer_id"`
	HotelID       string                 `json:"hotel_id"`
	HotelName     string                 `json:"hotel_name"`
	RoomID        string                 `json:"room_id"`
	RoomName      string                 `json:"room_name"`
	BookingStatus string                 `json:"booking_status"`
	PaymentStatus string                 `json:"payment_status"`
	NextAction    string                 `json:"next_action,omitempty"`
}

// Bucket groups the slots sharing one clock-hour display label.
type Bucket struct {
	Label string     `json:"label"`
	Slots []TimeSlot `json:"slots"`
}

// Filter is the resolved query for one schedule view: the day, the direction
// whose date field is tested, and the active facets. Empty facet values
// impose no constraint.
type Filter struct {
	Day           time.Time
	Direction     bookingModel.Direction
	Search        string
	HotelID       string
	RoomID        string
	PaymentStatus string
	BookingStatus string
}
