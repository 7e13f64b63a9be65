package telegram

import (
	"log"
	"strings"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
	"github.com/jellydator/ttlcache/v3"
	"github.com/sashabaranov/go-openai"

	"github.com/oybek/lalahouse/db"
	"github.com/oybek/lalahouse/lala"
	"github.com/oybek/lalahouse/model"
)

// LongPoll is the dashboard: it polls Telegram for updates and renders
// role-gated views backed by the rental backend.
type LongPoll struct {
	bot      *gotgbot.Bot
	sessions *db.SessionStore
	api      *lala.Client
	aiClient *openai.Client
	formURL  string

	// dash keeps the per-chat reconciled lists between callbacks,
	// forms holds WebApp prefill payloads, edits remembers which house
	// a chat is currently editing.
	dash  *ttlcache.Cache[int64, *dashboard]
	forms *ttlcache.Cache[string, model.HouseForm]
	edits *ttlcache.Cache[int64, int]
}

func NewLongPoll(
	bot *gotgbot.Bot,
	sessions *db.SessionStore,
	api *lala.Client,
	aiClient *openai.Client,
	formURL string,
	forms *ttlcache.Cache[string, model.HouseForm],
) *LongPoll {
	return &LongPoll{
		bot:      bot,
		sessions: sessions,
		api:      api,
		aiClient: aiClient,
		formURL:  formURL,
		forms:    forms,
		dash: ttlcache.New(
			ttlcache.WithTTL[int64, *dashboard](30*time.Minute),
			ttlcache.WithDisableTouchOnHit[int64, *dashboard](),
		),
		edits: ttlcache.New(
			ttlcache.WithTTL[int64, int](10*time.Minute),
			ttlcache.WithDisableTouchOnHit[int64, int](),
		),
	}
}

func (lp *LongPoll) Run() {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Println("an error occurred while handling update:", err.Error())
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	// Commands
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return strings.HasPrefix(msg.Text, "/start") },
		lp.handleStart,
	))
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return strings.HasPrefix(msg.Text, "/login") },
		lp.handleLogin,
	))
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return strings.HasPrefix(msg.Text, "/register") },
		lp.handleRegister,
	))
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return strings.HasPrefix(msg.Text, "/google") },
		lp.handleGoogleLogin,
	))
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return strings.HasPrefix(msg.Text, "/logout") },
		lp.handleLogout,
	))
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return strings.HasPrefix(msg.Text, "/book") },
		lp.handleBookCommand,
	))
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return strings.HasPrefix(msg.Text, "/describe") },
		lp.handleDescribe,
	))

	// Navigation and booking actions arrive as callback queries.
	dispatcher.AddHandler(handlers.NewCallback(
		func(query *gotgbot.CallbackQuery) bool { return strings.HasPrefix(query.Data, "nav_") },
		lp.handleNavigation,
	))
	dispatcher.AddHandler(handlers.NewCallback(
		func(query *gotgbot.CallbackQuery) bool { return strings.HasPrefix(query.Data, "book_") },
		lp.handleBookButton,
	))
	dispatcher.AddHandler(handlers.NewCallback(
		func(query *gotgbot.CallbackQuery) bool {
			return strings.HasPrefix(query.Data, "cancel_") ||
				strings.HasPrefix(query.Data, "delete_") ||
				strings.HasPrefix(query.Data, "approve_") ||
				strings.HasPrefix(query.Data, "hcancel_")
		},
		lp.handleBookingAction,
	))
	dispatcher.AddHandler(handlers.NewCallback(
		func(query *gotgbot.CallbackQuery) bool {
			return strings.HasPrefix(query.Data, "edit_") || strings.HasPrefix(query.Data, "delhouse_")
		},
		lp.handleHouseAction,
	))

	// WebApp form results, plus the /webapp debug path.
	dispatcher.AddHandler(handlers.NewMessage(
		func(msg *gotgbot.Message) bool { return msg.WebAppData != nil },
		lp.handleWebAppData,
	))
	dispatcher.AddHandler(handlers.NewMessage(func(msg *gotgbot.Message) bool {
		return strings.HasPrefix(msg.Text, "/webapp")
	}, lp.handleWebAppData))

	dispatcher.AddHandler(handlers.NewMessage(message.Text, lp.handleText))

	err := updater.StartPolling(lp.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		panic("failed to start polling: " + err.Error())
	}

	lp.bot.SetMyCommands(
		[]gotgbot.BotCommand{
			{Command: "start", Description: "Open the dashboard"},
			{Command: "login", Description: "Log in: /login email password"},
			{Command: "register", Description: "Sign up: /register email password renter|host full name"},
			{Command: "logout", Description: "Log out"},
		}, nil,
	)

	log.Printf("%s has been started...\n", lp.bot.User.Username)

	updater.Idle()
}

func (lp *LongPoll) handleText(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat
	return lp.sendText(chat.Id, TextDefault)
}

func (lp *LongPoll) sendText(chatId int64, text string) error {
	_, err := lp.bot.SendMessage(chatId, text, &gotgbot.SendMessageOpts{})
	return err
}
