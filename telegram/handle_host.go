package telegram

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/oybek/lalahouse/model"
)

func (lp *LongPoll) renderManageHouses(chatID int64, d *dashboard) error {
	if d.access.Kind != model.AccessHost {
		return lp.sendText(chatID, TextHostsOnly)
	}

	houses, err := d.houses.Mine(context.Background())
	if err != nil {
		return err
	}
	if len(houses) == 0 {
		return lp.sendText(chatID, TextNoHouses)
	}

	for _, h := range houses {
		_, err := lp.bot.SendMessage(chatID, renderHouse(h), &gotgbot.SendMessageOpts{
			ReplyMarkup: gotgbot.InlineKeyboardMarkup{
				InlineKeyboard: [][]gotgbot.InlineKeyboardButton{houseButtons(h)},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (lp *LongPoll) renderCustomers(chatID int64, d *dashboard) error {
	if d.access.Kind != model.AccessHost {
		return lp.sendText(chatID, TextHostsOnly)
	}

	grouped, err := d.houses.Customers(context.Background())
	if err != nil {
		return err
	}

	// Guards need the bookings in the reconciled list before any
	// approve/cancel button may act on them.
	if err := d.bookings.Load(context.Background()); err != nil {
		return err
	}

	sent := 0
	for _, hb := range grouped {
		for _, cb := range hb.Bookings {
			sent++
			opts := &gotgbot.SendMessageOpts{}
			if row := customerButtons(cb.Booking(hb.House.ID)); len(row) > 0 {
				opts.ReplyMarkup = gotgbot.InlineKeyboardMarkup{
					InlineKeyboard: [][]gotgbot.InlineKeyboardButton{row},
				}
			}
			if _, err := lp.bot.SendMessage(chatID, renderCustomerBooking(hb.House, cb), opts); err != nil {
				return err
			}
		}
	}
	if sent == 0 {
		return lp.sendText(chatID, TextNoBookings)
	}
	return nil
}

// renderNewHouse opens the WebApp form for a fresh listing.
func (lp *LongPoll) renderNewHouse(chatID int64, d *dashboard) error {
	if d.access.Kind != model.AccessHost {
		return lp.sendText(chatID, TextHostsOnly)
	}
	lp.edits.Delete(chatID)
	return lp.sendFormButton(chatID, TextNewHouse, "")
}

// handleHouseAction covers the host's Edit and Delete buttons on the
// Manage Houses view.
func (lp *LongPoll) handleHouseAction(b *gotgbot.Bot, ctx *ext.Context) error {
	query := ctx.CallbackQuery
	chatID := ctx.EffectiveChat.Id
	messageID := query.Message.GetMessageId()

	parts := strings.SplitN(query.Data, "_", 2)
	if len(parts) != 2 {
		_, _ = query.Answer(b, nil)
		return nil
	}
	houseID, err := strconv.Atoi(parts[1])
	if err != nil {
		_, _ = query.Answer(b, nil)
		return nil
	}

	d := lp.mount(context.Background(), chatID)
	if d.access.Kind != model.AccessHost {
		_, _ = query.Answer(b, &gotgbot.AnswerCallbackQueryOpts{Text: TextHostsOnly})
		return nil
	}
	_, _ = query.Answer(b, nil)

	switch parts[0] {
	case "edit":
		house, err := d.houses.Get(context.Background(), houseID)
		if err != nil {
			return lp.sendText(chatID, "Failed: "+err.Error())
		}
		formID := uuid.NewString()
		lp.forms.Set(formID, house.Form(), ttlcache.DefaultTTL)
		lp.edits.Set(chatID, houseID, ttlcache.DefaultTTL)
		return lp.sendFormButton(chatID, TextEditHouse, formID)

	case "delhouse":
		if err := d.houses.Delete(context.Background(), houseID); err != nil {
			return lp.sendText(chatID, "Failed: "+err.Error())
		}
		_, err := b.DeleteMessage(chatID, messageID, nil)
		if err != nil {
			log.Printf("[ChatId=%d] delete message: %v", chatID, err)
		}
		return lp.sendText(chatID, "House removed.")
	}
	return nil
}

func (lp *LongPoll) sendFormButton(chatID int64, text, formID string) error {
	url := lp.formURL
	if formID != "" {
		url += "?form=" + formID
	}
	keyboard := &gotgbot.ReplyKeyboardMarkup{
		OneTimeKeyboard: true,
		ResizeKeyboard:  true,
		Keyboard: [][]gotgbot.KeyboardButton{
			{
				{Text: "Open the house form", WebApp: &gotgbot.WebAppInfo{Url: url}},
			},
		},
	}
	_, err := lp.bot.SendMessage(chatID, text, &gotgbot.SendMessageOpts{ReplyMarkup: keyboard})
	return err
}
