package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"

	"github.com/oybek/lalahouse/model"
)

// handleStart is the dashboard mount: resolve the chat's session once,
// show the navigation for the resolved role and open the default view.
func (lp *LongPoll) handleStart(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat
	d := lp.mount(context.Background(), chat.Id)

	header := TextNotLoggedIn
	if d.access.Kind != model.AccessNone {
		header = "Welcome back, " + d.access.Session.User().FullName
	}

	_, err := b.SendMessage(chat.Id, header, &gotgbot.SendMessageOpts{
		ReplyMarkup: gotgbot.InlineKeyboardMarkup{InlineKeyboard: navigationFor(d.access)},
	})
	if err != nil {
		return err
	}

	if d.access.Kind == model.AccessNone {
		return nil
	}
	return lp.renderView(chat.Id, d, d.access.DefaultView())
}

func (lp *LongPoll) handleNavigation(b *gotgbot.Bot, ctx *ext.Context) error {
	query := ctx.CallbackQuery
	chatID := ctx.EffectiveChat.Id
	view := strings.TrimPrefix(query.Data, "nav_")

	_, _ = query.Answer(b, nil)

	d := lp.mount(context.Background(), chatID)
	if err := lp.renderView(chatID, d, view); err != nil {
		log.Printf("[ChatId=%d] render view %s: %v", chatID, view, err)
		return lp.sendText(chatID, "Could not load the view: "+err.Error())
	}
	return nil
}

func (lp *LongPoll) renderView(chatID int64, d *dashboard, view string) error {
	switch view {
	case viewLogin:
		return lp.sendText(chatID, TextNotLoggedIn)
	case viewRenterOverview:
		return lp.renderRenterOverview(chatID, d)
	case viewAvailableHouses:
		return lp.renderAvailableHouses(chatID, d)
	case viewBookedHouses:
		return lp.renderBookedHouses(chatID, d)
	case viewRenterSettings, viewHostSettings:
		return lp.renderSettings(chatID, d)
	case viewHostOverview:
		return lp.renderHostOverview(chatID, d)
	case viewManageHouses:
		return lp.renderManageHouses(chatID, d)
	case viewNewHouse:
		return lp.renderNewHouse(chatID, d)
	case viewCustomers:
		return lp.renderCustomers(chatID, d)
	}
	return lp.sendText(chatID, TextDefault)
}

func (lp *LongPoll) renderSettings(chatID int64, d *dashboard) error {
	if d.access.Kind == model.AccessNone {
		return lp.sendText(chatID, TextNotLoggedIn)
	}
	profile := renderProfile(d.access.Session.User())
	return lp.sendText(chatID, profile+"\n\n/logout to log out")
}

func (lp *LongPoll) renderRenterOverview(chatID int64, d *dashboard) error {
	if d.access.Kind != model.AccessRenter {
		return lp.sendText(chatID, TextRentersOnly)
	}

	mine, err := lp.api.Authed(d.access.Token()).MyBookings(context.Background())
	if err != nil {
		return err
	}
	var pending, approved, cancelled int
	for _, b := range mine {
		switch b.Status {
		case model.BookingStatusPending:
			pending++
		case model.BookingStatusApproved:
			approved++
		case model.BookingStatusCancelled:
			cancelled++
		}
	}
	return lp.sendText(chatID, fmt.Sprintf(
		"Your bookings: %d\npending: %d, approved: %d, cancelled: %d",
		len(mine), pending, approved, cancelled,
	))
}

func (lp *LongPoll) renderHostOverview(chatID int64, d *dashboard) error {
	if d.access.Kind != model.AccessHost {
		return lp.sendText(chatID, TextHostsOnly)
	}

	grouped, err := d.houses.Customers(context.Background())
	if err != nil {
		return err
	}
	var total, pending int
	for _, hb := range grouped {
		total += len(hb.Bookings)
		for _, b := range hb.Bookings {
			if b.Status == model.BookingStatusPending {
				pending++
			}
		}
	}
	return lp.sendText(chatID, fmt.Sprintf(
		"Houses listed: %d\nBookings received: %d (%d pending)",
		len(grouped), total, pending,
	))
}
