package telegram

import (
	"context"
	"log"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"

	"github.com/oybek/lalahouse/lala"
	"github.com/oybek/lalahouse/model"
)

// handleLogin exchanges "/login email password" for a session and
// persists the backend's payload verbatim.
func (lp *LongPoll) handleLogin(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat
	args := strings.Fields(ctx.EffectiveMessage.Text)
	if len(args) != 3 {
		return lp.sendText(chat.Id, TextLoginUsage)
	}

	// The message holds a password; get it off the screen.
	_, _ = b.DeleteMessage(chat.Id, ctx.EffectiveMessage.MessageId, nil)

	blob, err := lp.api.Login(context.Background(), args[1], args[2])
	if err != nil {
		return lp.sendText(chat.Id, "Login failed: "+err.Error())
	}
	return lp.storeSession(chat.Id, blob)
}

func (lp *LongPoll) handleGoogleLogin(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat
	args := strings.Fields(ctx.EffectiveMessage.Text)
	if len(args) != 2 {
		return lp.sendText(chat.Id, TextGoogleUsage)
	}

	blob, err := lp.api.GoogleAuthToken(context.Background(), args[1])
	if err != nil {
		return lp.sendText(chat.Id, "Login failed: "+err.Error())
	}
	return lp.storeSession(chat.Id, blob)
}

// storeSession persists the login payload, then remounts so the menu
// matches the newly resolved role.
func (lp *LongPoll) storeSession(chatID int64, blob []byte) error {
	access := model.ResolveAccess(blob)
	if access.Kind == model.AccessNone {
		log.Printf("[ChatId=%d] login payload did not resolve to a role", chatID)
		return lp.sendText(chatID, "Login failed: unexpected answer from the backend")
	}

	if err := lp.sessions.Save(context.Background(), chatID, blob); err != nil {
		log.Printf("[ChatId=%d] save session: %v", chatID, err)
		return lp.sendText(chatID, "Could not save your session, try again.")
	}
	lp.unmount(chatID)

	d := lp.mount(context.Background(), chatID)
	_, err := lp.bot.SendMessage(chatID, "Logged in as "+access.Session.User().FullName, &gotgbot.SendMessageOpts{
		ReplyMarkup: gotgbot.InlineKeyboardMarkup{InlineKeyboard: navigationFor(d.access)},
	})
	return err
}

func (lp *LongPoll) handleRegister(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat
	args := strings.Fields(ctx.EffectiveMessage.Text)
	if len(args) < 5 {
		return lp.sendText(chat.Id, TextRegisterUsage)
	}

	_, _ = b.DeleteMessage(chat.Id, ctx.EffectiveMessage.MessageId, nil)

	input := lala.RegisterInput{
		Email:    args[1],
		Password: args[2],
		Role:     model.Role(strings.ToLower(args[3])),
		FullName: strings.Join(args[4:], " "),
	}
	if err := lp.api.Register(context.Background(), input); err != nil {
		return lp.sendText(chat.Id, "Registration failed: "+err.Error())
	}
	return lp.sendText(chat.Id, TextRegistered)
}

// handleLogout is the single session invalidation path: drop the blob,
// drop the mounted dashboard.
func (lp *LongPoll) handleLogout(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat

	if err := lp.sessions.Delete(context.Background(), chat.Id); err != nil {
		log.Printf("[ChatId=%d] delete session: %v", chat.Id, err)
	}
	lp.unmount(chat.Id)

	return lp.sendText(chat.Id, TextLoggedOut)
}
