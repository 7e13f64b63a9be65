package lala

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oybek/lalahouse/model"
)

// ListHouses fetches the houses currently open for booking.
func (c *Client) ListHouses(ctx context.Context) ([]model.House, error) {
	var houses []model.House
	if err := c.get(ctx, "/api/house", &houses); err != nil {
		return nil, err
	}
	return houses, nil
}

// MyHouses fetches the houses owned by the authenticated host.
func (c *Client) MyHouses(ctx context.Context) ([]model.House, error) {
	var houses []model.House
	if err := c.get(ctx, "/api/house/me", &houses); err != nil {
		return nil, err
	}
	return houses, nil
}

// HouseCustomers fetches the host's houses together with the bookings made
// against them. When no bookings exist the backend switches to a
// {"message", "houses"} shape; that case maps to houses with empty
// booking lists.
func (c *Client) HouseCustomers(ctx context.Context) ([]model.HouseBookings, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/house/customers", nil, nil)
	if err != nil {
		return nil, err
	}

	var grouped []model.HouseBookings
	if err := json.Unmarshal(raw, &grouped); err == nil {
		return grouped, nil
	}

	var fallback struct {
		Houses []model.House `json:"houses"`
	}
	if err := json.Unmarshal(raw, &fallback); err != nil {
		return nil, err
	}
	grouped = make([]model.HouseBookings, 0, len(fallback.Houses))
	for _, h := range fallback.Houses {
		grouped = append(grouped, model.HouseBookings{
			House: model.HouseSummary{ID: h.ID, Title: h.Title, Location: h.Location, Price: h.Price},
		})
	}
	return grouped, nil
}

// GetHouse fetches one house by id. The backend mounts the path without a
// slash before the id; the client reproduces it exactly.
func (c *Client) GetHouse(ctx context.Context, id int) (*model.House, error) {
	var house model.House
	if err := c.get(ctx, fmt.Sprintf("/api/house%d", id), &house); err != nil {
		return nil, err
	}
	return &house, nil
}

// CreateHouse lists a new property for the authenticated host.
func (c *Client) CreateHouse(ctx context.Context, form model.HouseForm) (*model.House, error) {
	if !form.IsValid() {
		return nil, NewValidationError("house", "title, address, location and a positive price are required")
	}
	raw, err := c.do(ctx, http.MethodPost, "/api/house", nil, form)
	if err != nil {
		return nil, err
	}
	var resp struct {
		House model.House `json:"house"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp.House, nil
}

// UpdateHouse replaces the listed details of one of the host's houses.
func (c *Client) UpdateHouse(ctx context.Context, id int, form model.HouseForm) error {
	if !form.IsValid() {
		return NewValidationError("house", "title, address, location and a positive price are required")
	}
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/house%d", id), nil, form)
	return err
}

// DeleteHouse removes one of the host's houses.
func (c *Client) DeleteHouse(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/house%d", id), nil, nil)
	return err
}
