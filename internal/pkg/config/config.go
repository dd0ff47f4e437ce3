package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup and
// treated as read-only afterwards. The JWT secret and admin password defaults
// exist for local development only; any real deployment MUST override them.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens and is shared by both services.
	JWTSecret string `env:"JWT_SECRET, default=devsecret"`
	// AdminPassword seeds the bootstrap admin account on first startup.
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`
	// BootstrapToken, when set, can authorize one role elevation before any
	// admin token exists. Empty disables the bootstrap elevation path.
	BootstrapToken string `env:"BOOTSTRAP_TOKEN"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=explora"`
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
