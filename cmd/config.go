package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	LabelLogoPath      string `env:"LABEL_LOGO_PATH"`
	LabelContactPhone  string `env:"LABEL_CONTACT_PHONE"`
	LabelContactEmail  string `env:"LABEL_CONTACT_EMAIL"`
	LabelContactWeb    string `env:"LABEL_CONTACT_WEB"`
	LabelDayNightBadge bool   `env:"LABEL_DAY_NIGHT_BADGE" envDefault:"true"`
	LabelAuthor        string `env:"LABEL_AUTHOR"`

	// The default sender is printed on packages that carry none. It is used
	// only when LABEL_SENDER_NAME is set.
	LabelSenderName    string `env:"LABEL_SENDER_NAME"`
	LabelSenderStreet  string `env:"LABEL_SENDER_STREET"`
	LabelSenderCity    string `env:"LABEL_SENDER_CITY"`
	LabelSenderZipCode string `env:"LABEL_SENDER_ZIP_CODE"`
	LabelSenderCountry string `env:"LABEL_SENDER_COUNTRY" envDefault:"CZ"`

	LabelRetention         time.Duration `env:"LABEL_RETENTION" envDefault:"720h"`
	LabelRetentionSchedule string        `env:"LABEL_RETENTION_SCHEDULE" envDefault:"0 0 3 * * *"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return config, nil
}

// DSN is the PostgreSQL connection string built from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
