package schedule

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/schedule/model/dto"
	"frontdesk/internal/domains/schedule/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSchedule)
	})
}

// GetSchedule renders the day view of check-in and check-out slots.
// @Summary Get the schedule for a day
// @Description Retrieve hour-bucketed check-in/check-out slots for a calendar day, narrowed by optional facets and free-text search.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string false "Calendar day (YYYY-MM-DD), defaults to today"
// @Param direction query string false "checkin or checkout; both when omitted"
// @Param search query string false "Free-text search over id, customer, hotel, room and statuses"
// @Param hotel_id query string false "Filter by hotel"
// @Param room_id query string false "Filter by room"
// @Param payment_status query string false "Filter by payment status"
// @Param booking_status query string false "Filter by booking status"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Bucketed slots"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/schedule [get]
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	query := r.URL.Query()

	req := dto.ScheduleRequest{
		Date:          query.Get(constant.RequestParamDate),
		Direction:     query.Get(constant.RequestParamDirection),
		Search:        query.Get(constant.RequestParamSearch),
		HotelID:       query.Get(constant.RequestParamHotel),
		RoomID:        query.Get(constant.RequestParamRoom),
		PaymentStatus: query.Get(constant.RequestParamPayment),
		BookingStatus: query.Get(constant.RequestParamStatus),
	}

	schedule, err := handler.service.GetSchedule(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}
