package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/clock"
	"github.com/mcoot/rockpaperscissors/internal/dependencies/random"
	"github.com/mcoot/rockpaperscissors/internal/services/auth"
	"github.com/mcoot/rockpaperscissors/internal/services/match"
	"github.com/mcoot/rockpaperscissors/internal/services/profile"
	"github.com/mcoot/rockpaperscissors/internal/services/scoring"
	"github.com/mcoot/rockpaperscissors/internal/services/social"
	"github.com/mcoot/rockpaperscissors/internal/storage"
	filestorage "github.com/mcoot/rockpaperscissors/internal/storage/file"
	"github.com/mcoot/rockpaperscissors/internal/storage/memory"
	redisstorage "github.com/mcoot/rockpaperscissors/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage
	Store   *profile.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Session        *auth.Session
	AuthService    *auth.Service
	ScoringService *scoring.Service
	SocialService  *social.Service
	MatchRunner    *match.Runner

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// DataFile is the profile file for the file backend
	// If empty, defaults to leaderboard.txt
	DataFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired and the profile store loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)
	app.Store.Load(ctx)

	return app, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		return filestorage.New(cfg.DataFile), nil
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'file', 'memory' or 'redis'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	profiles := profile.New(store, logger)
	session := auth.NewSession()
	scoringService := scoring.New(logger)

	return &App{
		Storage:        store,
		Store:          profiles,
		Clock:          clk,
		Random:         rnd,
		Session:        session,
		AuthService:    auth.New(profiles, session, logger),
		ScoringService: scoringService,
		SocialService:  social.New(logger),
		MatchRunner:    match.NewRunner(profiles, scoringService, session, match.NewRandomOpponent(rnd), clk, logger),
		Logger:         logger,
	}
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
