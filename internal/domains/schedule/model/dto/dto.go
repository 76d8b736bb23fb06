package dto

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/schedule/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

// ScheduleRequest carries the raw query parameters for one schedule view.
// Values arrive unvalidated from the URL; ToFilter resolves them.
type ScheduleRequest struct {
	Date          string
	Direction     string
	Search        string
	HotelID       string
	RoomID        string
	PaymentStatus string
	BookingStatus string
}

// ToFilter resolves the raw request into a schedule filter. An absent date
// defaults to today in the application timezone; an absent direction means
// both views are built.
func (r ScheduleRequest) ToFilter() (model.Filter, error) {
	day := timezone.Day(timezone.Now())
	if r.Date != "" {
		parsed, err := timezone.Parse(constant.DateFormat, r.Date)
		if err != nil {
			return model.Filter{}, failure.InvalidDateParam
		}

		day = timezone.Day(parsed)
	}

	var direction bookingModel.Direction
	if r.Direction != "" {
		parsed, err := bookingModel.ParseDirection(r.Direction)
		if err != nil {
			return model.Filter{}, failure.InvalidDirectionParam
		}

		direction = parsed
	}

	return model.Filter{
		Day:           day,
		Direction:     direction,
		Search:        r.Search,
		HotelID:       r.HotelID,
		RoomID:        r.RoomID,
		PaymentStatus: r.PaymentStatus,
		BookingStatus: r.BookingStatus,
	}, nil
}

// ScheduleResponse is the rendered day view: the bucket labels in display
// order and the slots grouped under each label.
type ScheduleResponse struct {
	Date       string                      `json:"date"`
	Direction  string                      `json:"direction,omitempty"`
	Times      []string                    `json:"times"`
	Slots      map[string][]model.TimeSlot `json:"slots"`
	TotalSlots int                         `json:"total_slots"`
}

func (r *ScheduleResponse) FromBuckets(day time.Time, direction bookingModel.Direction, buckets []model.Bucket) {
	r.Date = timezone.Format(day, constant.DateFormat)
	r.Direction = string(direction)
	r.Times = make([]string, 0, len(buckets))
	r.Slots = make(map[string][]model.TimeSlot, len(buckets))

	for _, b := range buckets {
		r.Times = append(r.Times, b.Label)
		r.Slots[b.Label] = b.Slots
		r.TotalSlots += len(b.Slots)
	}
}
