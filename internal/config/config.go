package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Smtp  Smtp  `validate:"required"`
	Email Email `validate:"required"`

	Kafka Kafka `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Smtp struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	User     string `validate:"required,email"`
	Password string `validate:"required"`
}

// Email holds the presentation values the notifier interpolates into
// outgoing mail.
type Email struct {
	SenderName      string `validate:"required"`
	SystemName      string `validate:"required"`
	OwnerEmail      string `validate:"required,email"`
	RestaurantPhone string `validate:"required"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "3002"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3001"), ","),
		},

		Smtp: Smtp{
			Host:     env("EMAIL_HOST", "localhost"),
			Port:     envInt("EMAIL_PORT", 587),
			User:     env("EMAIL_USER", ""),
			Password: env("EMAIL_PASSWORD", ""),
		},

		Email: Email{
			SenderName:      env("SENDER_NAME", "Restaurant Hot Pizza"),
			SystemName:      env("SYSTEM_SENDER_NAME", "Restaurant Hunger System"),
			OwnerEmail:      env("OWNER_EMAIL", ""),
			RestaurantPhone: env("RESTAURANT_PHONE", "+49 30 12345678"),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "email-service"),
			Topic:   env("KAFKA_TOPIC", "orders-placed"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
