package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    key = "uuid"
	KeyLogger  key = "logger"
	KeyMetrics key = "metrics"
)

type Config struct {
	Service  Service
	Postgres Postgres
	Logger   Logger
	Platform Platform
	Kafka    Kafka
	Metrics  Metrics
	Auth     Auth
}

type Service struct {
	Port string `env:"SOCIETY_SERVICE_PORT" env-default:"8080"`
	Name string `env:"SOCIETY_SERVICE_NAME" env-default:"society-service"`
}

type Postgres struct {
	User     string `env:"SOCIETY_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"SOCIETY_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"SOCIETY_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"SOCIETY_SERVICE_POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"SOCIETY_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC" env-default:"user_updates"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Auth struct {
	JWTSecret string        `env:"SOCIETY_SERVICE_JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `env:"SOCIETY_SERVICE_TOKEN_TTL" env-default:"30m"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
