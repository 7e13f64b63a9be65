package lala

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oybek/lalahouse/model"
)

func TestAuthedSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL).Authed("tok-1")
	_, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestServerErrorKeepsDetailVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "House is already booked for these dates"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL).Authed("tok")
	_, err := client.CreateBooking(context.Background(), 1, time.Now(), time.Now().Add(24*time.Hour))
	require.Error(t, err)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusConflict, serverErr.StatusCode)
	assert.Equal(t, "House is already booked for these dates", serverErr.Detail)
	assert.Equal(t, "House is already booked for these dates", serverErr.Error())
}

func TestTransportErrorWhenBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nobody listens anymore

	client := NewClient(srv.URL)
	_, err := client.ListHouses(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestLoginValidationSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "", "")
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, calls)
}

func TestLoginReturnsRawPayload(t *testing.T) {
	payload := `{"access_token":"tok-9","token_type":"bearer","data":{"UserInfo":{"id":1,"full_name":"Jane","role":"renter"}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		w.Write([]byte(payload))
	}))
	defer srv.Close()

	blob, err := NewClient(srv.URL).Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, payload, string(blob))

	access := model.ResolveAccess(blob)
	assert.Equal(t, model.AccessRenter, access.Kind)
}

func TestUpdateBookingStatusPathAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		// The backend mounts the id without a slash.
		assert.Equal(t, "/api/booking12", r.URL.Path)
		assert.Equal(t, "cancelled", r.URL.Query().Get("status"))
		w.Write([]byte(`{"message":"ok","booking":{"id":12,"house_id":3,"status":"cancelled"}}`))
	}))
	defer srv.Close()

	booking, err := NewClient(srv.URL).Authed("tok").UpdateBookingStatus(context.Background(), 12, model.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 12, booking.ID)
	assert.Equal(t, model.BookingStatusCancelled, booking.Status)
}

func TestListBookingsNormalizesStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/booking", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"house_id":2,"status":"pending"},
			{"id":2,"house_id":2,"status":"cancel"},
			{"id":3,"house_id":4,"status":"Approved"}
		]`))
	}))
	defer srv.Close()

	bookings, err := NewClient(srv.URL).Authed("tok").ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, model.BookingStatusPending, bookings[0].Status)
	assert.Equal(t, model.BookingStatusCancelled, bookings[1].Status)
	assert.Equal(t, model.BookingStatusApproved, bookings[2].Status)
}

func TestHouseCustomersFallbackShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"No bookings found for your houses","houses":[
			{"id":1,"title":"Lake cabin","location":"Kivu","price":500}
		]}`))
	}))
	defer srv.Close()

	grouped, err := NewClient(srv.URL).Authed("tok").HouseCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Equal(t, "Lake cabin", grouped[0].House.Title)
	assert.Empty(t, grouped[0].Bookings)
}

func TestGetHousePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/house7", r.URL.Path)
		w.Write([]byte(`{"id":7,"title":"Loft","address":"12 Main St","location":"Kigali","price":900}`))
	}))
	defer srv.Close()

	house, err := NewClient(srv.URL).Authed("tok").GetHouse(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Loft", house.Title)
}

func TestExtractDetail(t *testing.T) {
	assert.Equal(t, "boom", extractDetail([]byte(`{"detail":"boom"}`)))
	assert.Equal(t, `[{"loc":["body"]}]`, extractDetail([]byte(`{"detail":[{"loc":["body"]}]}`)))
	assert.Equal(t, "plain text", extractDetail([]byte(" plain text \n")))
}
