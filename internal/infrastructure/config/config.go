package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// Standalone runs the portal against the in-process store with simulated
	// latency instead of MongoDB and Redis. Intended for field demos and
	// local development.
	Standalone bool `env:"STANDALONE, default=false"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// StoreConfig tunes the simulated round trips of the standalone store,
// mirroring the latency profile the future cloud database is expected to have.
type StoreConfig struct {
	ReadDelay  time.Duration `env:"STORE_READ_DELAY,  default=300ms"`
	WriteDelay time.Duration `env:"STORE_WRITE_DELAY, default=800ms"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=moitfe_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
