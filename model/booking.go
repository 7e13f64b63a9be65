package model

import (
	"encoding/json"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// NormalizeStatus maps the casings the backend has used over time
// ("cancel", "canceled", "Approved") onto the canonical lowercase set.
func NormalizeStatus(raw string) BookingStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return BookingStatusPending
	case "approved":
		return BookingStatusApproved
	case "cancel", "canceled", "cancelled":
		return BookingStatusCancelled
	}
	return BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStatus(raw)
	return nil
}

// Booking is a reservation of a house for a date range.
type Booking struct {
	ID        int           `json:"id"`
	HouseID   int           `json:"house_id"`
	UserID    int           `json:"user_id"`
	Checkin   time.Time     `json:"checkin"`
	Checkout  time.Time     `json:"checkout"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// CanApprove reports whether the host may still approve the booking.
func (b Booking) CanApprove() bool {
	return b.Status == BookingStatusPending
}

// CanCancel reports whether the booking may still be cancelled.
// Cancelling is allowed from pending and from approved; a cancelled
// booking stays cancelled.
func (b Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusApproved
}

// CanDelete reports whether the booking may be removed. Only a cancelled
// booking can be deleted.
func (b Booking) CanDelete() bool {
	return b.Status == BookingStatusCancelled
}

// CanSetStatus reports whether moving to the given status is a legal
// transition from the booking's current state.
func (b Booking) CanSetStatus(next BookingStatus) bool {
	switch next {
	case BookingStatusApproved:
		return b.CanApprove()
	case BookingStatusCancelled:
		return b.CanCancel()
	}
	return false
}
