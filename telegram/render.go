package telegram

import (
	"fmt"
	"strings"

	"github.com/oybek/lalahouse/model"
)

const dateLayout = "02.01.2006"

func renderHouse(h model.House) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", h.Title)
	fmt.Fprintf(&sb, "%s, %s\n", h.Location, h.Address)
	fmt.Fprintf(&sb, "%d bd / %d ba, %.0f sqft\n", h.Bedrooms, h.Bathrooms, h.Size)
	if h.Furnished {
		sb.WriteString("Furnished\n")
	}
	fmt.Fprintf(&sb, "$%.0f/month", h.Price)
	return sb.String()
}

func renderBooking(b model.Booking) string {
	return fmt.Sprintf(
		"Booking #%d\nCheck-in: %s\nCheck-out: %s\nStatus: %s",
		b.ID,
		b.Checkin.Format(dateLayout),
		b.Checkout.Format(dateLayout),
		b.Status,
	)
}

func renderCustomerBooking(house model.HouseSummary, b model.CustomerBooking) string {
	return fmt.Sprintf(
		"%s\n%s (%s)\n%s - %s\nStatus: %s",
		house.Title,
		b.User.Name,
		b.User.Email,
		b.Checkin.Format(dateLayout),
		b.Checkout.Format(dateLayout),
		b.Status,
	)
}

func renderProfile(u model.User) string {
	return fmt.Sprintf("%s\n%s\nRole: %s", u.FullName, u.Email, u.Role)
}
