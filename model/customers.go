package model

import "time"

// HouseSummary is the trimmed house block inside the customers feed.
type HouseSummary struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

// CustomerBooking is one renter's booking as shown to the host.
type CustomerBooking struct {
	BookingID int           `json:"booking_id"`
	User      CustomerInfo  `json:"user"`
	Status    BookingStatus `json:"status"`
	Checkin   time.Time     `json:"checkin"`
	Checkout  time.Time     `json:"checkout"`
	CreatedAt time.Time     `json:"created_at"`
}

type CustomerInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HouseBookings groups a host's house with the bookings made against it.
type HouseBookings struct {
	House    HouseSummary      `json:"house"`
	Bookings []CustomerBooking `json:"bookings"`
}

// Booking converts the host-view record into a Booking so the shared
// transition guards apply to it.
func (c CustomerBooking) Booking(houseID int) Booking {
	return Booking{
		ID:        c.BookingID,
		HouseID:   houseID,
		UserID:    c.User.ID,
		Checkin:   c.Checkin,
		Checkout:  c.Checkout,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
