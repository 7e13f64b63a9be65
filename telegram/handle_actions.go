package telegram

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"

	"github.com/oybek/lalahouse/model"
)

// handleBookingAction runs one guarded booking mutation. The message's
// buttons are stripped for the duration of the request (one action in
// flight per booking), and the local copy changes only after the backend
// has confirmed.
func (lp *LongPoll) handleBookingAction(b *gotgbot.Bot, ctx *ext.Context) error {
	query := ctx.CallbackQuery
	chatID := ctx.EffectiveChat.Id
	messageID := query.Message.GetMessageId()

	parts := strings.SplitN(query.Data, "_", 2)
	if len(parts) != 2 {
		_, _ = query.Answer(b, nil)
		return nil
	}
	action := parts[0]
	bookingID, err := strconv.Atoi(parts[1])
	if err != nil {
		_, _ = query.Answer(b, nil)
		return nil
	}

	d := lp.mount(context.Background(), chatID)
	switch action {
	case "cancel", "delete":
		if d.access.Kind != model.AccessRenter {
			_, _ = query.Answer(b, &gotgbot.AnswerCallbackQueryOpts{Text: TextRentersOnly})
			return nil
		}
	case "approve", "hcancel":
		if d.access.Kind != model.AccessHost {
			_, _ = query.Answer(b, &gotgbot.AnswerCallbackQueryOpts{Text: TextHostsOnly})
			return nil
		}
	}

	// The rendered list may predate this dashboard; reconcile before
	// guarding against a state the server no longer has.
	if _, ok := d.bookings.Get(bookingID); !ok {
		if err := d.bookings.Load(context.Background()); err != nil {
			_, _ = query.Answer(b, &gotgbot.AnswerCallbackQueryOpts{Text: "Failed: " + err.Error()})
			return nil
		}
	}

	_, _ = query.Answer(b, nil)

	// Strip the buttons while the single request is in flight.
	_, _, err = b.EditMessageReplyMarkup(&gotgbot.EditMessageReplyMarkupOpts{
		ChatId:      chatID,
		MessageId:   messageID,
		ReplyMarkup: gotgbot.InlineKeyboardMarkup{},
	})
	if err != nil {
		log.Printf("[ChatId=%d] strip buttons: %v", chatID, err)
	}

	switch action {
	case "approve":
		err = d.bookings.SetStatus(context.Background(), bookingID, model.BookingStatusApproved)
	case "cancel", "hcancel":
		err = d.bookings.SetStatus(context.Background(), bookingID, model.BookingStatusCancelled)
	case "delete":
		err = d.bookings.Delete(context.Background(), bookingID)
	}

	if err != nil {
		// Nothing changed locally; put the buttons back so the user
		// can retry, and show the failure as a notice.
		lp.restoreButtons(chatID, messageID, d, bookingID, action)
		return lp.sendText(chatID, "Failed: "+err.Error())
	}

	if action == "delete" {
		_, err := b.DeleteMessage(chatID, messageID, nil)
		if err != nil {
			log.Printf("[ChatId=%d] delete message: %v", chatID, err)
		}
		return lp.sendText(chatID, "Booking deleted.")
	}

	updated, ok := d.bookings.Get(bookingID)
	if !ok {
		return nil
	}
	row := bookingButtons(updated)
	if action != "cancel" {
		row = customerButtons(updated)
	}
	markup := gotgbot.InlineKeyboardMarkup{}
	if len(row) > 0 {
		markup.InlineKeyboard = [][]gotgbot.InlineKeyboardButton{row}
	}
	_, _, err = b.EditMessageText(renderBooking(updated), &gotgbot.EditMessageTextOpts{
		ChatId:      chatID,
		MessageId:   messageID,
		ReplyMarkup: markup,
	})
	return err
}

func (lp *LongPoll) restoreButtons(chatID int64, messageID int64, d *dashboard, bookingID int, action string) {
	current, ok := d.bookings.Get(bookingID)
	if !ok {
		return
	}
	row := bookingButtons(current)
	if action == "approve" || action == "hcancel" {
		row = customerButtons(current)
	}
	if len(row) == 0 {
		return
	}
	_, _, err := lp.bot.EditMessageReplyMarkup(&gotgbot.EditMessageReplyMarkupOpts{
		ChatId:    chatID,
		MessageId: messageID,
		ReplyMarkup: gotgbot.InlineKeyboardMarkup{
			InlineKeyboard: [][]gotgbot.InlineKeyboardButton{row},
		},
	})
	if err != nil {
		log.Printf("[ChatId=%d] restore buttons: %v", chatID, err)
	}
}
