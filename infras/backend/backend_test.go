package backend_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) backend.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.TimeoutSeconds = 2

	return backend.New(cfg, mocks.NewOtel())
}

func TestClient_ListBookings_FlattensKeyedMap(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/booking/list", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"bookings": {
				"b2": {"hotelId": "h1", "bookIn": "2025-03-05", "eta": "14:00"},
				"b1": {"hotelId": "h1", "bookIn": "2025-03-06", "eta": "09:15"}
			}
		}`))
	}))

	bookings, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// The map key becomes the record id, and the flattened order is stable.
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "b2", bookings[1].ID)
	assert.Equal(t, "14:00", bookings[1].ETA)
}

func TestClient_SuccessFalseIsFailure(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": false, "error": "hotel not found"}`))
	}))

	_, err := client.ListHotels(context.Background())
	require.Error(t, err)

	assert.Equal(t, failure.KindAPI, failure.GetKind(err))
	assert.Contains(t, err.Error(), "hotel not found")
}

func TestClient_NonOKStatusIsFailure(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectedKind failure.Kind
	}{
		{
			name:         "structured error body",
			status:       http.StatusNotFound,
			body:         `{"error": "booking not found"}`,
			expectedKind: failure.KindAPI,
		},
		{
			name:         "unparseable error body",
			status:       http.StatusBadGateway,
			body:         `<html>bad gateway</html>`,
			expectedKind: failure.KindNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := client.SeedDemoData(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.expectedKind, failure.GetKind(err))
		})
	}
}

func TestClient_UpdateStatus_SendsWireBody(t *testing.T) {
	var gotPath, gotMethod, gotBody string

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method

		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "Booking status updated successfully"}`))
	}))

	err := client.UpdateStatus(context.Background(), "b1", "CheckedIn")
	require.NoError(t, err)

	assert.Equal(t, "/booking/b1/status", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.JSONEq(t, `{"status": "CheckedIn"}`, gotBody)
}

func TestClient_FetchOptimalPrice(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/booking/b1/optimal-price", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"optimalPrice": 129.5, "pricingMethod": "seasonal"}}`))
	}))

	price, err := client.FetchOptimalPrice(context.Background(), "b1")
	require.NoError(t, err)
	require.NotNil(t, price.OptimalPrice)

	assert.InDelta(t, 129.5, *price.OptimalPrice, 0.0001)
	assert.Equal(t, "seasonal", price.PricingMethod)
}

func TestClient_Timeout(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(250 * time.Millisecond)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.SeedDemoData(ctx)
	require.Error(t, err)
	assert.Equal(t, failure.KindTimeout, failure.GetKind(err))
}

func TestClient_ListRooms_CarriesHotelID(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/hotels/h1/rooms", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": [{"id": "r1", "RoomName": "Seaview Deluxe"}]}`))
	}))

	rooms, err := client.ListRooms(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	assert.Equal(t, "r1", rooms[0].ID)
	assert.Equal(t, "h1", rooms[0].HotelID)
	assert.Equal(t, "Seaview Deluxe", rooms[0].RoomName)
}
