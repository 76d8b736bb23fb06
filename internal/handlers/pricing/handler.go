package pricing

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/pricing/model/dto"
	"frontdesk/internal/domains/pricing/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings/{id}/price", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPrice)
		routerGroup.Put("/", handler.SavePrice)
		routerGroup.Delete("/", handler.CancelEdit)
		routerGroup.Post("/edit", handler.EditPrice)
		routerGroup.Post("/refresh", handler.RefreshPrice)
	})
}

// GetPrice loads a booking's optimal price, reusing the session cache.
// @Summary Get a booking's optimal price
// @Description Retrieve the computed optimal price, fetching from the backend only on first use in the session.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.PriceResponse] "Price entry"
// @Failure 502 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/bookings/{id}/price [get]
func (handler *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	price, err := handler.service.Load(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load optimal price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Optimal price loaded successfully")

	response.WithJSON(w, http.StatusOK, price)
}

// SavePrice persists a manual price override.
// @Summary Save a price override
// @Description Validate and persist a manual optimal-price override for a booking.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SavePriceRequest true "Override value"
// @Success 200 {object} response.Data[dto.PriceResponse] "Committed price entry"
// @Failure 400 {object} response.Error "Non-finite or negative price"
// @Failure 409 {object} response.Error "Duplicate in-flight save"
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id}/price [put]
func (handler *Handler) SavePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SavePrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SavePriceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	price, err := handler.service.Save(ctx, id, *req.OptimalPrice)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save optimal price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Optimal price saved successfully")

	response.WithJSON(w, http.StatusOK, price)
}

// EditPrice opens the edit buffer for a booking's price.
// @Summary Begin editing a booking's price
// @Description Open the edit buffer with the draft seeded from the last known price, fetching it first if needed.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.PriceResponse] "Entry in editing state"
// @Failure 502 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/bookings/{id}/price/edit [post]
func (handler *Handler) EditPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	price, err := handler.service.Edit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to begin price edit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price edit started")

	response.WithJSON(w, http.StatusOK, price)
}

// CancelEdit discards a pending price draft.
// @Summary Cancel a price edit
// @Description Discard the edit buffer and revert to the last committed price.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.PriceResponse] "Reverted price entry"
// @Router /v1/bookings/{id}/price [delete]
func (handler *Handler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelEdit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	price, err := handler.service.CancelEdit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel price edit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price edit cancelled")

	response.WithJSON(w, http.StatusOK, price)
}

// RefreshPrice forces a re-fetch of the computed price.
// @Summary Refresh a booking's optimal price
// @Description Re-fetch the computed price from the backend, bypassing the session cache.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.PriceResponse] "Fresh price entry"
// @Failure 502 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/bookings/{id}/price/refresh [post]
func (handler *Handler) RefreshPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	price, err := handler.service.Refresh(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh optimal price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Optimal price refreshed successfully")

	response.WithJSON(w, http.StatusOK, price)
}
