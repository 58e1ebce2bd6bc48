package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Host            string `env:"HOST" envDefault:"0.0.0.0"`
	Port            string `env:"PORT" envDefault:"8080"`
	DBPath          string `env:"DB_PATH" envDefault:"data/hearth.db"`
	SecretKey       string `env:"SECRET_KEY" envDefault:"change_me_in_production"`
	Timezone        string `env:"TZ" envDefault:"UTC"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES" envDefault:"1440"`

	// Reminder delivery is delegated to an external webhook; an empty URL
	// disables the scheduler's notifier.
	ReminderWebhookURL string `env:"REMINDER_WEBHOOK_URL"`
	SchedulerEnabled   bool   `env:"SCHEDULER_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
