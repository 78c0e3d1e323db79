package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=json text"`

	// ReportingCurrency is the currency household income is reported in.
	ReportingCurrency domain.CurrencyCode `mapstructure:"REPORTING_CURRENCY" validate:"oneof=USD EUR GBP CAN"`
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "json",
		ReportingCurrency: domain.USD,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	def := Default()
	v := viper.New()
	v.SetDefault("LOG_LEVEL", def.LogLevel)
	v.SetDefault("LOG_FORMAT", def.LogFormat)
	v.SetDefault("REPORTING_CURRENCY", string(def.ReportingCurrency))
	v.AutomaticEnv()

	cfg := &Config{
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:         strings.ToLower(v.GetString("LOG_FORMAT")),
		ReportingCurrency: domain.CurrencyCode(strings.ToUpper(v.GetString("REPORTING_CURRENCY"))),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
		log.Printf("Warning: LOG_LEVEL is empty. Defaulting to %s.\n", cfg.LogLevel)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
		log.Printf("Warning: LOG_FORMAT is empty. Defaulting to %s.\n", cfg.LogFormat)
	}
	if cfg.ReportingCurrency == "" {
		cfg.ReportingCurrency = def.ReportingCurrency
		log.Printf("Warning: REPORTING_CURRENCY is empty. Defaulting to %s.\n", cfg.ReportingCurrency)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
