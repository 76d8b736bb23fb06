package dto

import (
	"frontdesk/internal/domains/booking/model"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed CheckedIn CheckedOut Cancelled"`
}

type BookingResponse struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	RoomID        string   `json:"room_id"`
	CustomerID    string   `json:"customer_id"`
	BookIn        string   `json:"book_in"`
	BookOut       string   `json:"book_out"`
	ETA           string   `json:"eta"`
	ETD           string   `json:"etd"`
	BookingStatus string   `json:"booking_status"`
	PaymentStatus string   `json:"payment_status"`
	OptimalPrice  *float64 `json:"optimal_price,omitempty"`
	PricingMethod string   `json:"pricing_method,omitempty"`
	NextAction    string   `json:"next_action,omitempty"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.HotelID = booking.HotelID
	r.RoomID = booking.RoomID
	r.CustomerID = booking.CustomerID
	r.BookIn = booking.BookIn
	r.BookOut = booking.BookOut
	r.ETA = booking.ETA
	r.ETD = booking.ETD
	r.BookingStatus = string(booking.BookingStatus)
	r.PaymentStatus = string(booking.PaymentStatus)
	r.OptimalPrice = booking.OptimalPrice
	r.PricingMethod = booking.PricingMethod
	r.NextAction = booking.BookingStatus.NextAction()
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
