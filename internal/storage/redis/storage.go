package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage"
	"github.com/mcoot/rockpaperscissors/internal/storage/record"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each profile is kept as its five-line record in a single hash field.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadProfiles(ctx context.Context) ([]*model.Profile, error) {
	records, err := s.client.HGetAll(ctx, profilesKey(s.cfg.KeyPrefix)).Result()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	order, err := s.client.LRange(ctx, profileOrderKey(s.cfg.KeyPrefix), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	// Names missing from the order index follow in name order
	seen := make(map[string]bool, len(order))
	var names []string
	for _, name := range order {
		if _, ok := records[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range records {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	names = append(names, rest...)

	profiles := make([]*model.Profile, 0, len(names))
	var errs []error
	for _, name := range names {
		decoded, err := record.Decode(strings.NewReader(records[name]))
		if err != nil || len(decoded) != 1 {
			errs = append(errs, fmt.Errorf("%w: redis field %q", model.ErrCorruptRecord, name))
			continue
		}
		profiles = append(profiles, decoded[0])
	}

	return profiles, errors.Join(errs...)
}

func (s *Storage) SaveProfiles(ctx context.Context, profiles []*model.Profile) error {
	hashKey := profilesKey(s.cfg.KeyPrefix)
	orderKey := profileOrderKey(s.cfg.KeyPrefix)

	// Replace the snapshot atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, hashKey, orderKey)

	if len(profiles) > 0 {
		fields := make([]interface{}, 0, len(profiles)*2)
		names := make([]interface{}, 0, len(profiles))
		for _, p := range profiles {
			fields = append(fields, p.Name, record.EncodeProfile(p))
			names = append(names, p.Name)
		}
		pipe.HSet(ctx, hashKey, fields...)
		pipe.RPush(ctx, orderKey, names...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
