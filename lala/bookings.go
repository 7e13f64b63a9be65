package lala

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/oybek/lalahouse/model"
)

type createBookingRequest struct {
	HouseID  int       `json:"house_id"`
	Checkin  time.Time `json:"checkin"`
	Checkout time.Time `json:"checkout"`
}

// ListBookings fetches the bookings visible to the authenticated principal.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/api/booking", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// MyBookings fetches only the bookings created by the authenticated user.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/api/booking/user", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking reserves a house for the date range. Dates travel as
// ISO-8601; the backend answers with the created booking.
func (c *Client) CreateBooking(ctx context.Context, houseID int, checkin, checkout time.Time) (*model.Booking, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/booking", nil, createBookingRequest{
		HouseID:  houseID,
		Checkin:  checkin,
		Checkout: checkout,
	})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Booking model.Booking `json:"booking"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// UpdateBookingStatus asks the backend to move a booking to the given
// status. The status travels as a query parameter.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status model.BookingStatus) (*model.Booking, error) {
	query := url.Values{"status": {string(status)}}
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/booking%d", id), query, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Booking model.Booking `json:"booking"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// DeleteBooking removes a booking record server-side.
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/booking%d", id), nil, nil)
	return err
}
