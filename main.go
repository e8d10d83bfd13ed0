package main

import (
	"context"
	"os"
	"os/signal"
	"strattonbot/internal/adapters/generator"
	"strattonbot/internal/adapters/handler"
	"strattonbot/internal/adapters/sender"
	"strattonbot/internal/adapters/store"
	"strattonbot/internal/adapters/wiki"
	"strattonbot/internal/core/domain/commands"
	"strattonbot/internal/core/service"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/rs/zerolog"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting strattonbot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var dispatcher *handler.Dispatcher

	token := viper.GetString("telegram.bot_token")
	opts := []bot.Option{
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			dispatcher.HandleUpdate(ctx, b, update)
		}),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegramSender(b)

	db, err := store.NewDB(viper.GetString("database.path"))
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed closing database")
		}
	}()

	users := store.NewUserRegistry(db)

	orGenerator := generator.NewOpenRouter(viper.GetString("openrouter.api_key"),
		viper.GetString("chat.system_prompt"),
		viper.GetString("chat.model"))

	resolver := wiki.NewMediaWiki(viper.GetString("wikipedia.api_url"))

	tracker := service.NewConversationTracker()

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	startHandler := commands.NewStartHandler(users, s, "/start")
	gameHandler := commands.NewGameHandler(s, "/game")
	wikiHandler := commands.NewWikiHandler(resolver, s, tracker, "/wiki")
	mailingHandler := commands.NewMailingHandler(users, s, tracker, "/mailing")
	showAllHandler := commands.NewShowAllHandler(users, s, "/show_all")
	chatHandler := commands.NewChatHandler(orGenerator, s, "/chat")

	commandRegistry := &commands.Registry{}
	commandRegistry.Register(startHandler)
	commandRegistry.Register(gameHandler)
	commandRegistry.Register(wikiHandler)
	commandRegistry.Register(mailingHandler)
	commandRegistry.Register(showAllHandler)
	commandRegistry.Register(chatHandler)

	dispatcher = handler.NewDispatcher(commandRegistry, tracker, chatHandler, s, handlerTimeout)
	dispatcher.RegisterConsumer(wikiHandler)
	dispatcher.RegisterConsumer(mailingHandler)
	dispatcher.RegisterCallback(gameHandler)
	dispatcher.RegisterCallback(startHandler)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}
