// Package backend is the HTTP client for the external hotel-management
// backend. Every read and write the service performs goes through here; the
// wire format is fixed by the backend and must not drift.
package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	directoryModel "frontdesk/internal/domains/directory/model"
	pricingModel "frontdesk/internal/domains/pricing/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Client interface {
	ListBookings(ctx context.Context) ([]bookingModel.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status bookingModel.BookingStatus) error
	ListHotels(ctx context.Context) ([]directoryModel.Hotel, error)
	ListRooms(ctx context.Context, hotelID string) ([]directoryModel.Room, error)
	FetchOptimalPrice(ctx context.Context, bookingID string) (pricingModel.OptimalPrice, error)
	UpdateOptimalPrice(ctx context.Context, bookingID string, price float64) error
	SeedDemoData(ctx context.Context) error
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second

	return &clientImpl{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		otel:    ot,
	}
}

// envelope is the backend's response wrapper. A present success=false is as
// authoritative a failure signal as a non-2xx status code.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

func (e envelope) reason() string {
	if e.Error != "" {
		return e.Error
	}

	if e.Message != "" {
		return e.Message
	}

	return "backend rejected the request"
}

// ListBookings implements Client. The backend returns bookings as an object
// keyed by id; flattening to a slice with the key injected as ID happens here
// and nowhere else.
func (c *clientImpl) ListBookings(ctx context.Context) (res []bookingModel.Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	var payload struct {
		Bookings map[string]bookingModel.Booking `json:"bookings"`
	}

	if err = c.do(ctx, http.MethodGet, "/booking/list", nil, &payload); err != nil {
		return nil, err
	}

	res = make([]bookingModel.Booking, 0, len(payload.Bookings))

	for id, booking := range payload.Bookings {
		booking.ID = id
		res = append(res, booking)
	}

	// Map iteration order is random; keep the flattened list stable.
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res, nil
}

// UpdateStatus implements Client.
func (c *clientImpl) UpdateStatus(ctx context.Context, bookingID string, status bookingModel.BookingStatus) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, bookingID)

	body := map[string]any{"status": status}
	path := fmt.Sprintf("/booking/%s/status", url.PathEscape(bookingID))

	return c.do(ctx, http.MethodPut, path, body, nil)
}

// ListHotels implements Client.
func (c *clientImpl) ListHotels(ctx context.Context) (res []directoryModel.Hotel, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	var env envelope

	if err = c.do(ctx, http.MethodGet, "/api/hotels/ids", nil, &env); err != nil {
		return nil, err
	}

	if err = json.Unmarshal(env.Data, &res); err != nil {
		return nil, failure.NetworkError(fmt.Errorf("malformed hotel list payload: %w", err)) //nolint:wrapcheck
	}

	return res, nil
}

// ListRooms implements Client.
func (c *clientImpl) ListRooms(ctx context.Context, hotelID string) (res []directoryModel.Room, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	var env envelope

	path := fmt.Sprintf("/api/hotels/%s/rooms", url.PathEscape(hotelID))
	if err = c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}

	if err = json.Unmarshal(env.Data, &res); err != nil {
		return nil, failure.NetworkError(fmt.Errorf("malformed room list payload: %w", err)) //nolint:wrapcheck
	}

	for i := range res {
		res[i].HotelID = hotelID
	}

	return res, nil
}

// FetchOptimalPrice implements Client.
func (c *clientImpl) FetchOptimalPrice(ctx context.Context, bookingID string) (res pricingModel.OptimalPrice, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".FetchOptimalPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, bookingID)

	var env envelope

	path := fmt.Sprintf("/booking/%s/optimal-price", url.PathEscape(bookingID))
	if err = c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return res, err
	}

	if err = json.Unmarshal(env.Data, &res); err != nil {
		return res, failure.NetworkError(fmt.Errorf("malformed optimal price payload: %w", err)) //nolint:wrapcheck
	}

	return res, nil
}

// UpdateOptimalPrice implements Client.
func (c *clientImpl) UpdateOptimalPrice(ctx context.Context, bookingID string, price float64) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".UpdateOptimalPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, bookingID)

	body := map[string]any{"optimalPrice": price}
	path := fmt.Sprintf("/booking/%s", url.PathEscape(bookingID))

	return c.do(ctx, http.MethodPut, path, body, nil)
}

// SeedDemoData implements Client. It asks the backend to reseed its demo
// records; callers reload the booking list afterwards.
func (c *clientImpl) SeedDemoData(ctx context.Context) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SeedDemoData")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.do(ctx, http.MethodGet, "/booking/fetch-mock", nil, nil)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failure.InternalError(fmt.Errorf("encoding request body: %w", err)) //nolint:wrapcheck
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return failure.InternalError(fmt.Errorf("building request: %w", err)) //nolint:wrapcheck
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			log.Error().Err(err).Str("path", path).Msg("backend request timed out")

			return failure.Timeout(fmt.Sprintf("backend request timed out: %s %s", method, path)) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("path", path).Msg("backend request failed")

		return failure.NetworkError(err) //nolint:wrapcheck
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure.NetworkError(fmt.Errorf("reading response body: %w", err)) //nolint:wrapcheck
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var env envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && (env.Error != "" || env.Message != "") {
			return failure.APIError(resp.StatusCode, env.reason()) //nolint:wrapcheck
		}

		return failure.NetworkError(fmt.Errorf("backend returned status %d for %s %s", resp.StatusCode, method, path)) //nolint:wrapcheck
	}

	// A 2xx body can still carry success=false; treat it exactly like a
	// non-2xx status.
	var env envelope
	if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env.failed() {
		return failure.APIError(resp.StatusCode, env.reason()) //nolint:wrapcheck
	}

	if out != nil {
		if err = json.Unmarshal(raw, out); err != nil {
			return failure.NetworkError(fmt.Errorf("decoding response body: %w", err)) //nolint:wrapcheck
		}
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}

	return false
}
