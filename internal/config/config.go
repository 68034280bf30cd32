package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/flashcards/internal/srs"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"` // current application environment (local, dev, production etc)
	TelegramAPIToken string    `mapstructure:"-"`   // Telegram API token; the bot is disabled when empty
	DB               DB        `mapstructure:"database"`
	HTTP             HTTP      `mapstructure:"http"`
	SRS              SRS       `mapstructure:"srs"`
	Reminders        Reminders `mapstructure:"reminders"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

type HTTP struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestLogs     bool          `mapstructure:"request_logs"`
}

// SRS mirrors srs.Params so the scheduler can be tuned without a rebuild.
type SRS struct {
	InitialEase     float64 `mapstructure:"initial_ease"`
	MinimumEase     float64 `mapstructure:"minimum_ease"`
	PassThreshold   int     `mapstructure:"pass_threshold"`
	FirstInterval   int     `mapstructure:"first_interval"`
	SecondInterval  int     `mapstructure:"second_interval"`
	MaximumInterval int     `mapstructure:"maximum_interval"` // 0 means srs.IntervalLimit
}

// Params converts the section into scheduler parameters.
func (s SRS) Params() srs.Params {
	return srs.Params{
		InitialEase:     s.InitialEase,
		MinimumEase:     s.MinimumEase,
		PassThreshold:   srs.Quality(s.PassThreshold),
		FirstInterval:   s.FirstInterval,
		SecondInterval:  s.SecondInterval,
		MaximumInterval: s.MaximumInterval,
	}
}

type Reminders struct {
	Enabled bool   `mapstructure:"enabled"`
	Spec    string `mapstructure:"spec"` // cron expression, evaluated in UTC
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Load .env if it exists (ignore if it does not).
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	defaults := srs.DefaultParams()

	v.SetDefault("env", "local")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("http.request_logs", true)
	v.SetDefault("srs.initial_ease", defaults.InitialEase)
	v.SetDefault("srs.minimum_ease", defaults.MinimumEase)
	v.SetDefault("srs.pass_threshold", int(defaults.PassThreshold))
	v.SetDefault("srs.first_interval", defaults.FirstInterval)
	v.SetDefault("srs.second_interval", defaults.SecondInterval)
	v.SetDefault("srs.maximum_interval", defaults.MaximumInterval)
	v.SetDefault("reminders.enabled", true)
	v.SetDefault("reminders.spec", "0 * * * *")
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := cfg.SRS.Params().Validate(); err != nil {
		return nil, fmt.Errorf("invalid srs section: %w", err)
	}

	return &cfg, nil
}
