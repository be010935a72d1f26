package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"rolesync-bot/pkg"
	"rolesync-bot/pkg/config"
	"rolesync-bot/pkg/handlers"
	"rolesync-bot/pkg/rolesync"
	"syscall"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/handler"
	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/lmittmann/tint"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:           cfg.SentryDSN,
		EnableTracing: false,
		EnableLogs:    true,
		Environment:   cfg.Environment,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if !cfg.Production() {
				return nil
			}
			return event
		},
	})
	if err != nil {
		panic(err)
	}

	defer sentry.Flush(2 * time.Second)

	logger := slog.New(slog.NewMultiHandler(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level: cfg.LogLevel,
		}),
		sentryslog.Option{
			EventLevel: []slog.Level{slog.LevelError},
			LogLevel:   []slog.Level{slog.LevelWarn},
		}.NewSentryHandler(context.Background())))
	slog.SetDefault(logger)

	slog.Info("starting the bot...",
		slog.String("disgo.version", disgo.Version),
		slog.String("trigger.phrase", cfg.Menu.TriggerPhrase),
		slog.Any("allowed.roles", cfg.Menu.AllowedRoles))

	b := &pkg.Bot{
		Menu: cfg.Menu,
	}
	h := handlers.NewHandler(b)

	client, err := disgo.New(cfg.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds, gateway.IntentGuildMessages, gateway.IntentGuildMessageReactions, gateway.IntentMessageContent),
			gateway.WithPresenceOpts(gateway.WithWatchingActivity("role menus"))),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventManagerConfigOpts(bot.WithAsyncEventsEnabled()),
		bot.WithEventListeners(h, handlers.NewReactionListener(b)))
	if err != nil {
		panic(err)
	}

	b.Engine = rolesync.New(rolesync.NewRestPlatform(client.Rest), cfg.Menu.RoleSync())

	defer client.Close(context.TODO())

	if err := handler.SyncCommands(client, handlers.Commands, nil); err != nil {
		slog.Error("rolesync: error while syncing commands", tint.Err(err))
	}

	if err := client.OpenGateway(context.TODO()); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("rolesync bot is now running.")
	<-ctx.Done()
	slog.Info("rolesync: shutting down")
}
