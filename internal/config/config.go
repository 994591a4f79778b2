package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	// External identity provider. In development a symmetric signing key
	// may be used instead of JWKS discovery.
	AuthIssuer    string `mapstructure:"AUTH_ISSUER"`
	AuthJWKSURL   string `mapstructure:"AUTH_JWKS_URL"`
	AuthAudience  string `mapstructure:"AUTH_AUDIENCE"`
	JWTSigningKey string `mapstructure:"JWT_SIGNING_KEY"`

	// Booking and reminder tuning.
	BookingSkewSeconds  int    `mapstructure:"BOOKING_SKEW_SECONDS"`
	ReminderWindowHours int    `mapstructure:"REMINDER_WINDOW_HOURS"`
	DefaultBookingTime  string `mapstructure:"DEFAULT_BOOKING_TIME"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("BOOKING_SKEW_SECONDS", 60)
	v.SetDefault("REMINDER_WINDOW_HOURS", 24)
	v.SetDefault("DEFAULT_BOOKING_TIME", "09:00")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("AUTH_ISSUER")
	v.BindEnv("AUTH_JWKS_URL")
	v.BindEnv("AUTH_AUDIENCE")
	v.BindEnv("JWT_SIGNING_KEY")
	v.BindEnv("BOOKING_SKEW_SECONDS")
	v.BindEnv("REMINDER_WINDOW_HOURS")
	v.BindEnv("DEFAULT_BOOKING_TIME")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Outside development
// a real token issuer must be configured so requests carry verified
// identities; the HMAC signing key is a development shortcut only.
func (c *Config) Validate() error {
	if !c.IsDev() && c.AuthIssuer == "" && c.JWTSigningKey == "" {
		return fmt.Errorf("AUTH_ISSUER is required when ENV is %q", c.Env)
	}
	if c.BookingSkewSeconds < 0 {
		return fmt.Errorf("BOOKING_SKEW_SECONDS must not be negative, got %d", c.BookingSkewSeconds)
	}
	if c.ReminderWindowHours <= 0 {
		return fmt.Errorf("REMINDER_WINDOW_HOURS must be positive, got %d", c.ReminderWindowHours)
	}
	return nil
}
