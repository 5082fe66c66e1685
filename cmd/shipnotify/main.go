package main

import (
	"context"
	"log/slog"
	"os"

	"shipnotify/config"
	"shipnotify/internal/delivery"
	"shipnotify/internal/delivery/http"
	"shipnotify/internal/delivery/http/router/handler"
	"shipnotify/internal/delivery/poller"
	deliverytelegram "shipnotify/internal/delivery/telegram"
	logs "shipnotify/internal/infra/log"
	"shipnotify/internal/infra/persistence/postgres"
	"shipnotify/internal/infra/sms"
	"shipnotify/internal/infra/storage"
	"shipnotify/internal/infra/telegram"
	"shipnotify/internal/infra/vision"
	"shipnotify/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type webhookParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Client *telegram.Client
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDispatcher(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			registerWebhook,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		telegram.New,
		telegram.NewMessenger,
		sms.New,
		storage.New,
		vision.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewNotificationRepository,
			postgres.NewAdminRepository,
			postgres.NewTemplateRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewAdminService,
			impl.NewTemplateService,
			impl.NewReminderService,
		),
	)
}

func injectDispatcher() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverytelegram.NewDispatcher,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				poller.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerWebhook points the Bot API at this deployment when a public URL
// is configured. Without one the bot stays reachable for manual webhook
// setups and local tunnels.
func registerWebhook(params webhookParams) {
	if params.Config.Telegram.WebhookURL == "" {
		params.Logger.Warn("telegram.webhookUrl not configured, skipping webhook registration")

		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.Client.SetWebhook(ctx, params.Config.Telegram.WebhookURL)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
