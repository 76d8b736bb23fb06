package model

const (
	EntityName = "directory"
)

// Hotel is reference data used only to resolve display names. The external
// backend owns it; this service keeps a read-only lookup copy.
type Hotel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room carries the backend's field casing for room names verbatim.
type Room struct {
	ID       string `json:"id"`
	HotelID  string `json:"hotelId"`
	RoomName string `json:"RoomName"`
}
