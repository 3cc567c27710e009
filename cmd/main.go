package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/restaurant-hunger/email-service/internal/app"
	"github.com/restaurant-hunger/email-service/internal/config"
	"github.com/restaurant-hunger/email-service/internal/handler"
	"github.com/restaurant-hunger/email-service/internal/mailer"
	"github.com/restaurant-hunger/email-service/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	smtp := mailer.NewSMTP(mailer.Config{
		Host:     conf.Smtp.Host,
		Port:     conf.Smtp.Port,
		User:     conf.Smtp.User,
		Password: conf.Smtp.Password,
	})
	logger.Info("smtp dialer configured", slog.String("host", conf.Smtp.Host))

	notifier := service.NewNotifier(logger, smtp, service.Senders{
		CustomerFacing:  conf.Email.SenderName,
		System:          conf.Email.SystemName,
		OwnerEmail:      conf.Email.OwnerEmail,
		RestaurantPhone: conf.Email.RestaurantPhone,
	})

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, notifier)
	httpHandler := handler.NewHTTPHandler(logger, notifier)

	app := app.New(logger, conf)

	app.SetHttpHandlers(httpHandler)
	app.SetKafkaHandlers(kafkaHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
