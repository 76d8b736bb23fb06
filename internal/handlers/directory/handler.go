package directory

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/directory/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Directory
	otel    otel.Otel
}

func New(service service.Directory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}/rooms", handler.GetRooms)
	})
}

// GetHotels retrieves the hotel reference list.
// @Summary Get all hotels
// @Description Retrieve the hotel directory used for name resolution and facet options.
// @Tags Directory
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]model.Hotel] "List of hotels"
// @Failure 502 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	hotels, err := handler.service.Hotels(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetRooms retrieves the rooms of one hotel.
// @Summary Get a hotel's rooms
// @Description Retrieve the room directory for one hotel.
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[[]model.Room] "List of rooms"
// @Failure 502 {object} response.Error
// @Router /v1/hotels/{id}/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rooms, err := handler.service.Rooms(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}
