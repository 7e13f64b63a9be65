package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tg "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/jellydator/ttlcache/v3"
	"github.com/joho/godotenv"
	"github.com/jub0bs/fcors"
	"github.com/sashabaranov/go-openai"

	"github.com/oybek/lalahouse/config"
	"github.com/oybek/lalahouse/db"
	"github.com/oybek/lalahouse/lala"
	"github.com/oybek/lalahouse/model"
	"github.com/oybek/lalahouse/telegram"
	"github.com/oybek/lalahouse/webapp"
)

func main() {
	log.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	mongoClient, err := db.Create(db.Config{Url: cfg.Mongo.Url})
	if err != nil {
		log.Fatalf("Could not set up database: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	//
	botOpts := tg.BotOpts{
		BotClient: &tg.BaseBotClient{
			Client: http.Client{},
			DefaultRequestOpts: &tg.RequestOpts{
				Timeout: 10 * time.Second,
				APIURL:  tg.DefaultAPIURL,
			},
		},
	}
	bot, err := tg.NewBot(cfg.Telegram.BotToken, &botOpts)
	if err != nil {
		panic("failed to create new bot: " + err.Error())
	}

	var aiClient *openai.Client
	if cfg.OpenAI.Token != "" {
		aiClient = openai.NewClient(cfg.OpenAI.Token)
	}

	apiClient := lala.NewClient(cfg.Backend.BaseURL)
	sessions := db.NewSessionStore(mongoClient)

	formCache := ttlcache.New(
		ttlcache.WithTTL[string, model.HouseForm](10*time.Minute),
		ttlcache.WithDisableTouchOnHit[string, model.HouseForm](),
	)

	longPoll := telegram.NewLongPoll(bot, sessions, apiClient, aiClient, cfg.WebApp.FormURL, formCache)
	go longPoll.Run()

	cors, _ := fcors.AllowAccess(
		fcors.FromAnyOrigin(),
		fcors.WithMethods(
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		),
		fcors.WithRequestHeaders("Authorization"),
	)

	formServer := webapp.NewServer(formCache)
	http.Handle("/", cors(formServer.Router()))
	go http.ListenAndServe(cfg.WebApp.Addr, nil)

	// listen for ctrl+c signal from terminal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	log.Println(fmt.Sprint(<-ch))
	log.Println("Stopping the bot...")
}
