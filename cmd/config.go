package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"fooddelivery"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Empty disables idempotency keys.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Empty logs notifications instead of sending them.
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`

	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
	LoyaltyJobSchedule string `envconfig:"LOYALTY_JOB_SCHEDULE" default:"*/10 * * * * *"`
	LoyaltyBatchSize   int    `envconfig:"LOYALTY_BATCH_SIZE" default:"50"`
	NotificationQueue  int    `envconfig:"NOTIFICATION_QUEUE_SIZE" default:"256"`
}

// LoadConfig reads the optional env files, then the process environment.
// Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
