package telegram

import (
	"context"
	"log"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"

	"github.com/oybek/lalahouse/model"
)

// handleWebAppData receives the filled house form back from the WebApp.
// Whether it creates a listing or updates one depends on whether the chat
// had started an edit.
func (lp *LongPoll) handleWebAppData(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := &ctx.EffectiveMessage.Chat

	webAppData := ctx.EffectiveMessage.WebAppData
	if webAppData != nil {
		lp.bot.DeleteMessage(chat.Id, ctx.EffectiveMessage.MessageId, &gotgbot.DeleteMessageOpts{})
	}
	if strings.HasPrefix(ctx.EffectiveMessage.Text, "/webapp") {
		webAppData = &gotgbot.WebAppData{
			Data: strings.TrimPrefix(ctx.EffectiveMessage.Text, "/webapp"),
		}
	}
	if webAppData == nil {
		return nil
	}

	json := webAppData.Data
	log.Printf("[ChatId=%d] Got json from WebApp: %s", chat.Id, json)

	d := lp.mount(context.Background(), chat.Id)
	if d.access.Kind != model.AccessHost {
		return lp.sendText(chat.Id, TextHostsOnly)
	}

	form, err := model.ParseAndValidate[model.HouseForm](json)
	if err != nil {
		return lp.sendText(chat.Id, "The form came back broken - try again")
	}
	return lp.submitHouseForm(chat, d, form)
}

func (lp *LongPoll) submitHouseForm(chat *gotgbot.Chat, d *dashboard, form *model.HouseForm) error {
	if kv := lp.edits.Get(chat.Id); kv != nil {
		houseID := kv.Value()
		lp.edits.Delete(chat.Id)
		if err := d.houses.Update(context.Background(), houseID, *form); err != nil {
			return lp.sendText(chat.Id, "Update failed: "+err.Error())
		}
		return lp.sendText(chat.Id, "Listing updated!")
	}

	if _, err := d.houses.Create(context.Background(), *form); err != nil {
		return lp.sendText(chat.Id, "Listing failed: "+err.Error())
	}
	return lp.sendText(chat.Id, "Listing created!")
}
