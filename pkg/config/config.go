package config

import (
	"time"

	env "github.com/caarlos0/env/v11"
)

type CommonConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":3000"`
}

type PostgresConfig struct {
	DSN           string `env:"DATABASE_URL" envDefault:"postgres://storefront:storefront@db:5432/storefront?sslmode=disable"`
	MigrationsDir string `env:"DB_MIGRATIONS_DIR" envDefault:"db/migrations"`
}

type SessionConfig struct {
	RedisAddr     string        `env:"SESSION_REDIS_ADDR"`
	RedisPassword string        `env:"SESSION_REDIS_PASSWORD"`
	RedisDB       int           `env:"SESSION_REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
	CookieSecure  bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

type RateLimitConfig struct {
	SignupPerMinute int `env:"RATE_LIMIT_SIGNUP" envDefault:"5"`
	SigninPerMinute int `env:"RATE_LIMIT_SIGNIN" envDefault:"12"`
}

type AuthConfig struct {
	// PasswordPepper is appended to every password before bcrypt. Stored
	// hashes were produced with it, so it cannot be rotated in place.
	PasswordPepper string `env:"EXTRA_BCRYPT_STRING"`
	// JWTSecret is still set by existing deployments but no token flow
	// reads it.
	// TODO: drop once ops confirms no environment still exports JWT_STRING.
	JWTSecret string `env:"JWT_STRING"`
}

type Config struct {
	Common    CommonConfig
	HTTP      HTTPConfig
	Postgres  PostgresConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
