package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/rockpaperscissors/internal/factory"
	redisstorage "github.com/mcoot/rockpaperscissors/internal/storage/redis"
)

// Config holds CLI configuration. Every field has a default, so the game runs
// with no environment or flags at all.
type Config struct {
	StorageType    string `env:"RPS_STORAGE" envDefault:"file"`
	DataFile       string `env:"RPS_DATA_FILE" envDefault:"leaderboard.txt"`
	RedisURL       string `env:"RPS_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisKeyPrefix string `env:"RPS_REDIS_KEY_PREFIX" envDefault:"rps"`
	LogLevel       string `env:"RPS_LOG_LEVEL" envDefault:"warn"`
	LogFormat      string `env:"RPS_LOG_FORMAT" envDefault:"text"`
	Output         string `env:"RPS_OUTPUT" envDefault:"text"`
}

// LoadConfig reads an optional .env file and then the environment
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing .env file is fine
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FactoryConfig converts the CLI configuration into the application factory's
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		StorageType: c.StorageType,
		DataFile:    c.DataFile,
		Logger:      logger,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.KeyPrefix = c.RedisKeyPrefix
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// NewLogger builds the slog logger described by the configuration
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
}
