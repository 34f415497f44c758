package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-sourced settings. Loaded once at startup and
// passed down through the dependency container; nothing re-reads the
// environment after Load returns.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   int    `envconfig:"PORT" default:"8080"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Media    MediaConfig
}

type PostgresConfig struct {
	Host     string `envconfig:"PG_HOST" default:"localhost"`
	Port     string `envconfig:"PG_PORT" default:"5432"`
	User     string `envconfig:"PG_USER" default:"postgres"`
	Password string `envconfig:"PG_PASSWORD"`
	DB       string `envconfig:"PG_DB" default:"ieee_site"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
}

// AdminConfig carries the admin credentials and the session signing secret.
// All three are deployment preconditions: they may be empty after Load, but
// the auth package treats first use with an empty value as a fatal
// configuration error rather than an authentication failure.
type AdminConfig struct {
	Username  string `envconfig:"ADMIN_USERNAME"`
	Password  string `envconfig:"ADMIN_PASSWORD"`
	JWTSecret string `envconfig:"ADMIN_JWT_SECRET"`
}

type MediaConfig struct {
	CloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	APISecret string `envconfig:"CLOUDINARY_API_SECRET"`
}

// ErrIncomplete signals that a required credential group is only partially set.
var ErrIncomplete = errors.New("incomplete configuration")

// Load reads the full configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// DSN builds the Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

// Addr builds the Redis address.
func (r RedisConfig) Addr() string {
	host := r.Host
	if host == "" {
		host = "localhost"
	}
	return host + ":" + r.Port
}

// Enabled reports whether a Redis host was configured at all. When false the
// service falls back to the in-memory cache.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// Validate checks the media credential group. Gallery uploads need all three.
func (m MediaConfig) Validate() error {
	if m.CloudName == "" || m.APIKey == "" || m.APISecret == "" {
		return fmt.Errorf("%w: cloudinary credentials", ErrIncomplete)
	}
	return nil
}
