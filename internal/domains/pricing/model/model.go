package model

const (
	EntityName = "pricing"
)

// State tracks where a booking's price entry sits in the fetch/edit/save
// loop. Loading and Saving are transient; failures fall back to the last
// settled state instead of discarding data.
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoading  State = "loading"
	StateLoaded   State = "loaded"
	StateEditing  State = "editing"
	StateSaving   State = "saving"
)

// OptimalPrice is the backend's computed price suggestion for one booking.
type OptimalPrice struct {
	OptimalPrice  *float64 `json:"optimalPrice"`
	PricingMethod string   `json:"pricingMethod"`
}

// Entry is one booking's slot in the session price cache.
type Entry struct {
	BookingID     string   `json:"booking_id"`
	State         State    `json:"state"`
	OptimalPrice  *float64 `json:"optimal_price"`
	PricingMethod string   `json:"pricing_method"`
	Draft         *float64 `json:"draft,omitempty"`
	LastError     string   `json:"last_error,omitempty"`
}
