package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"

	"github.com/oybek/lalahouse/model"
)

const bookDateLayout = "2006-01-02"

func (lp *LongPoll) renderAvailableHouses(chatID int64, d *dashboard) error {
	if d.access.Kind != model.AccessRenter {
		return lp.sendText(chatID, TextRentersOnly)
	}

	houses, err := d.houses.Available(context.Background())
	if err != nil {
		return err
	}
	if len(houses) == 0 {
		return lp.sendText(chatID, TextNoHouses)
	}

	for _, h := range houses {
		_, err := lp.bot.SendMessage(chatID, renderHouse(h), &gotgbot.SendMessageOpts{
			ReplyMarkup: gotgbot.InlineKeyboardMarkup{
				InlineKeyboard: [][]gotgbot.InlineKeyboardButton{bookButton(h)},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (lp *LongPoll) renderBookedHouses(chatID int64, d *dashboard) error {
	if d.access.Kind != model.AccessRenter {
		return lp.sendText(chatID, TextRentersOnly)
	}

	if err := d.bookings.Load(context.Background()); err != nil {
		return err
	}
	items := d.bookings.Items()
	if len(items) == 0 {
		return lp.sendText(chatID, TextNoBookings)
	}

	for _, b := range items {
		opts := &gotgbot.SendMessageOpts{}
		if row := bookingButtons(b); len(row) > 0 {
			opts.ReplyMarkup = gotgbot.InlineKeyboardMarkup{
				InlineKeyboard: [][]gotgbot.InlineKeyboardButton{row},
			}
		}
		if _, err := lp.bot.SendMessage(chatID, renderBooking(b), opts); err != nil {
			return err
		}
	}
	return nil
}

// handleBookButton answers the Book button with the command template;
// dates cannot travel through callback data.
func (lp *LongPoll) handleBookButton(b *gotgbot.Bot, ctx *ext.Context) error {
	query := ctx.CallbackQuery
	chatID := ctx.EffectiveChat.Id

	houseID, err := strconv.Atoi(strings.TrimPrefix(query.Data, "book_"))
	if err != nil {
		_, _ = query.Answer(b, nil)
		return nil
	}
	_, _ = query.Answer(b, nil)

	return lp.sendText(chatID, fmt.Sprintf(
		"To book house #%d send:\n/book %d 2024-01-01 2024-01-05", houseID, houseID,
	))
}

// handleBookCommand creates a booking from "/book id checkin checkout".
// Date validation runs before any request; a backend rejection (for
// example a double booking) is shown with the backend's own words.
func (lp *LongPoll) handleBookCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat
	d := lp.mount(context.Background(), chat.Id)
	if d.access.Kind != model.AccessRenter {
		return lp.sendText(chat.Id, TextRentersOnly)
	}

	args := strings.Fields(ctx.EffectiveMessage.Text)
	if len(args) != 4 {
		return lp.sendText(chat.Id, TextBookUsage)
	}
	houseID, err := strconv.Atoi(args[1])
	if err != nil {
		return lp.sendText(chat.Id, TextBookUsage)
	}

	var checkin, checkout time.Time
	if t, err := time.Parse(bookDateLayout, args[2]); err == nil {
		checkin = t
	}
	if t, err := time.Parse(bookDateLayout, args[3]); err == nil {
		checkout = t
	}

	booking, err := d.bookings.Book(context.Background(), houseID, checkin, checkout)
	if err != nil {
		return lp.sendText(chat.Id, "Booking failed: "+err.Error())
	}

	opts := &gotgbot.SendMessageOpts{}
	if row := bookingButtons(*booking); len(row) > 0 {
		opts.ReplyMarkup = gotgbot.InlineKeyboardMarkup{
			InlineKeyboard: [][]gotgbot.InlineKeyboardButton{row},
		}
	}
	_, err = lp.bot.SendMessage(chat.Id, "Booked!\n\n"+renderBooking(*booking), opts)
	return err
}
