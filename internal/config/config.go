package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production         bool          `env:"PRODUCTION" envDefault:"false"`
	Port               string        `env:"PORT" envDefault:"80"`
	PostgresUrl        string        `env:"POSTGRES_URL,required"`
	RedisUrl           string        `env:"REDIS_URL" envDefault:"redis:6379"`
	JwtTTL             time.Duration `env:"TOKEN_TTL" envDefault:"20m"`
	Secret             string        `env:"SECRET,required"`
	SessionTTl         time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionTokenLength int           `env:"SESSION_TOKEN_LENGTH" envDefault:"32"`
	ClientSecretPath   string        `env:"CLIENT_SECRET_PATH" envDefault:"secrets/client_secret.json"`
	RedirectURL        string        `env:"REDIRECT_URL" envDefault:""`
	ClientType         string        `env:"CLIENT_TYPE" envDefault:"web"`
	Timezone           string        `env:"TIMEZONE" envDefault:"Asia/Jerusalem"`
	SweepSchedule      string        `env:"SWEEP_SCHEDULE" envDefault:"@hourly"`
	EventsCacheTTL     time.Duration `env:"EVENTS_CACHE_TTL" envDefault:"60s"`
}

var (
	conf     config
	location *time.Location
	loadOnce sync.Once
)

// load runs on the first getter call, not at import time, so packages that
// reach config transitively can be unit-tested without a full environment.
func load() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		panic(fmt.Sprintf("failed to load timezone %q: %v", conf.Timezone, err))
	}
	location = loc
}

func get() *config {
	loadOnce.Do(load)
	return &conf
}

func Production() bool {
	return get().Production
}

func Port() string {
	return get().Port
}

func PostgresURL() string {
	return get().PostgresUrl
}

func RedisURL() string {
	return get().RedisUrl
}

func JwtTTL() time.Duration {
	return get().JwtTTL
}

func Secret() string {
	return get().Secret
}

func SessionTTl() time.Duration {
	return get().SessionTTl
}

func SessionTokenLength() int {
	return get().SessionTokenLength
}

func ClientSecretPath() string {
	return get().ClientSecretPath
}

func RedirectURL() string {
	return get().RedirectURL
}

func ClientType() string {
	return get().ClientType
}

// Location is the calendar timezone all civil dates are interpreted in.
func Location() *time.Location {
	loadOnce.Do(load)
	return location
}

func SweepSchedule() string {
	return get().SweepSchedule
}

func EventsCacheTTL() time.Duration {
	return get().EventsCacheTTL
}
