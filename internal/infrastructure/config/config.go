package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Password hashing strategies selectable via PASSWORD_ALGO.
const (
	PasswordAlgoArgon2 = "argon2id"
	PasswordAlgoBcrypt = "bcrypt"
)

// Config is built once at process start and passed by reference into every
// component that needs it; business logic never reads the environment.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Password PasswordConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// PasswordConfig carries the hashing strategy and its cost parameters. The
// argon2id defaults are the deployed production posture (64 MiB, 3 passes,
// 1 lane); they are configuration, not hidden constants.
type PasswordConfig struct {
	Algorithm         string `env:"PASSWORD_ALGO,         default=argon2id"`
	Argon2MemoryKiB   uint32 `env:"ARGON2_MEMORY_KIB,     default=65536"`
	Argon2Iterations  uint32 `env:"ARGON2_ITERATIONS,     default=3"`
	Argon2Parallelism uint8  `env:"ARGON2_PARALLELISM,    default=1"`
	BcryptCost        int    `env:"BCRYPT_COST,           default=10"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
