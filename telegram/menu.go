package telegram

import (
	"fmt"

	"github.com/PaulSonOfLars/gotgbot/v2"

	"github.com/oybek/lalahouse/model"
)

// View ids, one per dashboard screen.
const (
	viewRenterOverview  = "renter-overview"
	viewAvailableHouses = "available-houses"
	viewBookedHouses    = "booked-houses"
	viewRenterSettings  = "renter-settings"
	viewHostOverview    = "host-overview"
	viewManageHouses    = "manage-houses"
	viewNewHouse        = "new-house"
	viewCustomers       = "customers"
	viewHostSettings    = "host-settings"
	viewLogin           = "login"
)

// navigationFor builds the sidebar for the resolved role. The three access
// kinds are matched exhaustively; anything unexpected gets the
// unauthenticated menu.
func navigationFor(access model.Access) [][]gotgbot.InlineKeyboardButton {
	switch access.Kind {
	case model.AccessRenter:
		return [][]gotgbot.InlineKeyboardButton{
			{navButton("Overview", viewRenterOverview)},
			{navButton("Available Houses", viewAvailableHouses)},
			{navButton("Booked Houses", viewBookedHouses)},
			{navButton("Settings", viewRenterSettings)},
		}
	case model.AccessHost:
		return [][]gotgbot.InlineKeyboardButton{
			{navButton("Overview", viewHostOverview)},
			{navButton("Manage Houses", viewManageHouses)},
			{navButton("New House", viewNewHouse)},
			{navButton("Customers", viewCustomers)},
			{navButton("Settings", viewHostSettings)},
		}
	}
	return [][]gotgbot.InlineKeyboardButton{
		{navButton("Log in", viewLogin)},
	}
}

func navButton(text, view string) gotgbot.InlineKeyboardButton {
	return gotgbot.InlineKeyboardButton{Text: text, CallbackData: "nav_" + view}
}

// bookingButtons renders the actions the renter may take on one booking.
// Only guarded actions are offered: Cancel while cancelling is still
// legal, Delete only once the booking is cancelled. Never both at once.
func bookingButtons(b model.Booking) []gotgbot.InlineKeyboardButton {
	var row []gotgbot.InlineKeyboardButton
	if b.CanCancel() {
		row = append(row, gotgbot.InlineKeyboardButton{
			Text:         "Cancel Booking",
			CallbackData: fmt.Sprintf("cancel_%d", b.ID),
		})
	}
	if b.CanDelete() {
		row = append(row, gotgbot.InlineKeyboardButton{
			Text:         "Delete",
			CallbackData: fmt.Sprintf("delete_%d", b.ID),
		})
	}
	return row
}

// customerButtons renders the host's actions for one incoming booking:
// an Approve/Cancel pair while it is pending, nothing afterwards.
func customerButtons(b model.Booking) []gotgbot.InlineKeyboardButton {
	var row []gotgbot.InlineKeyboardButton
	if b.CanApprove() {
		row = append(row, gotgbot.InlineKeyboardButton{
			Text:         "Approve",
			CallbackData: fmt.Sprintf("approve_%d", b.ID),
		})
		row = append(row, gotgbot.InlineKeyboardButton{
			Text:         "Cancel",
			CallbackData: fmt.Sprintf("hcancel_%d", b.ID),
		})
	}
	return row
}

func houseButtons(h model.House) []gotgbot.InlineKeyboardButton {
	return []gotgbot.InlineKeyboardButton{
		{Text: "Edit", CallbackData: fmt.Sprintf("edit_%d", h.ID)},
		{Text: "Delete", CallbackData: fmt.Sprintf("delhouse_%d", h.ID)},
	}
}

func bookButton(h model.House) []gotgbot.InlineKeyboardButton {
	return []gotgbot.InlineKeyboardButton{
		{Text: "Book", CallbackData: fmt.Sprintf("book_%d", h.ID)},
	}
}
