package dto

import (
	"frontdesk/internal/domains/pricing/model"
)

type SavePriceRequest struct {
	OptimalPrice *float64 `json:"optimal_price" validate:"required"`
}

type PriceResponse struct {
	BookingID     string   `json:"booking_id"`
	State         string   `json:"state"`
	OptimalPrice  *float64 `json:"optimal_price"`
	PricingMethod string   `json:"pricing_method,omitempty"`
	Draft         *float64 `json:"draft,omitempty"`
	LastError     string   `json:"last_error,omitempty"`
}

func (r *PriceResponse) FromEntry(entry model.Entry) {
	r.BookingID = entry.BookingID
	r.State = string(entry.State)
	r.OptimalPrice = entry.OptimalPrice
	r.PricingMethod = entry.PricingMethod
	r.Draft = entry.Draft
	r.LastError = entry.LastError
}
