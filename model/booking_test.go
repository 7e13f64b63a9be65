package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	testCases := []struct {
		name       string
		status     BookingStatus
		canApprove bool
		canCancel  bool
		canDelete  bool
	}{
		{name: "pending", status: BookingStatusPending, canApprove: true, canCancel: true, canDelete: false},
		{name: "approved", status: BookingStatusApproved, canApprove: false, canCancel: true, canDelete: false},
		{name: "cancelled", status: BookingStatusCancelled, canApprove: false, canCancel: false, canDelete: true},
		{name: "unknown", status: BookingStatus("weird"), canApprove: false, canCancel: false, canDelete: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{ID: 1, Status: tc.status}
			assert.Equal(t, tc.canApprove, b.CanApprove())
			assert.Equal(t, tc.canCancel, b.CanCancel())
			assert.Equal(t, tc.canDelete, b.CanDelete())
		})
	}
}

func TestBookingCanSetStatus(t *testing.T) {
	pending := Booking{Status: BookingStatusPending}
	approved := Booking{Status: BookingStatusApproved}
	cancelled := Booking{Status: BookingStatusCancelled}

	assert.True(t, pending.CanSetStatus(BookingStatusApproved))
	assert.True(t, pending.CanSetStatus(BookingStatusCancelled))
	assert.True(t, approved.CanSetStatus(BookingStatusCancelled))

	// No way back.
	assert.False(t, approved.CanSetStatus(BookingStatusApproved))
	assert.False(t, cancelled.CanSetStatus(BookingStatusApproved))
	assert.False(t, cancelled.CanSetStatus(BookingStatusCancelled))
	assert.False(t, pending.CanSetStatus(BookingStatusPending))
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, BookingStatusCancelled, NormalizeStatus("cancel"))
	assert.Equal(t, BookingStatusCancelled, NormalizeStatus("canceled"))
	assert.Equal(t, BookingStatusCancelled, NormalizeStatus("Cancelled"))
	assert.Equal(t, BookingStatusApproved, NormalizeStatus("Approved"))
	assert.Equal(t, BookingStatusPending, NormalizeStatus(" pending "))
}

func TestBookingStatusUnmarshalNormalizes(t *testing.T) {
	var b Booking
	err := json.Unmarshal([]byte(`{"id":7,"house_id":2,"status":"Approved"}`), &b)
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusApproved, b.Status)
}
