package config

import (
	"time"
)

type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fxconvert]"`
}

// RateSource configures the public currency-api endpoints. Both endpoints
// serve the same {root}/{code}.json shape; the fallback is tried when the
// primary fails.
type RateSource struct {
	PrimaryURL  string        `envconfig:"PRIMARY_URL" default:"https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies"`
	FallbackURL string        `envconfig:"FALLBACK_URL" default:"https://latest.currency-api.pages.dev/v1/currencies"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// Cache configures the rate table cache slot.
type Cache struct {
	Backend     string        `envconfig:"BACKEND" default:"memory"`
	TTL         time.Duration `envconfig:"TTL" default:"300s"`
	RedisURL    string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	KeyPrefix   string        `envconfig:"KEY_PREFIX" default:"fx:"`
	RedisExpiry time.Duration `envconfig:"REDIS_EXPIRY" default:"24h"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"20"`
	Window      time.Duration `envconfig:"WINDOW" default:"1s"`
}

type App struct {
	Env        string      `envconfig:"APP_ENV" default:"development"`
	Server     *Server     `envconfig:"SERVER"`
	Log        *Log        `envconfig:"LOG"`
	RateSource *RateSource `envconfig:"RATE_SOURCE"`
	Cache      *Cache      `envconfig:"CACHE"`
	RateLimit  *RateLimit  `envconfig:"RATE_LIMIT"`
}
