package booking

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/refresh", handler.RefreshBookings)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
	})
}

// GetBookings retrieves the canonical booking list.
// @Summary Get all bookings
// @Description Retrieve the flattened booking collection, loading it from the backend when not yet cached.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 502 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// RefreshBookings reseeds the demo dataset and reloads the collection.
// @Summary Refresh demo bookings
// @Description Trigger server-side demo seeding, then reload the booking collection from the backend.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Bookings refreshed successfully"
// @Failure 502 {object} response.Error
// @Router /v1/bookings/refresh [post]
func (handler *Handler) RefreshBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshBookings")
	defer scope.End()

	if err := handler.service.RefreshDemo(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings refreshed successfully")

	response.WithMessage(w, http.StatusOK, "Bookings refreshed successfully")
}

// UpdateStatus applies a lifecycle transition to one booking.
// @Summary Update a booking's status
// @Description Apply a lifecycle transition (check in, check out). Transitions outside the lifecycle table are rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Invalid transition or duplicate in-flight update"
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated successfully")

	response.WithJSON(w, http.StatusOK, booking)
}
