package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage"
	"github.com/mcoot/rockpaperscissors/internal/storage/record"
)

// Store is the in-memory set of profiles keyed by name, backed by a Storage.
// It is owned by a single caller; nothing here is safe for concurrent use.
type Store struct {
	storage storage.Storage
	logger  *slog.Logger

	profiles map[string]*model.Profile
	order    []string

	// readFailed is set when the last Load could not read storage at all.
	// Saving then would overwrite profiles that are still on disk.
	readFailed bool
}

// New creates an empty Store. Call Load to populate it from storage.
func New(storage storage.Storage, logger *slog.Logger) *Store {
	return &Store{
		storage:  storage,
		logger:   logger,
		profiles: make(map[string]*model.Profile),
	}
}

// Load replaces the in-memory profiles with the persisted ones.
// Storage failures are logged and leave the store with whatever could be read.
// Corrupt records are dropped for good on the next save; any other failure keeps
// the store in memory only until a later Load succeeds.
func (s *Store) Load(ctx context.Context) {
	s.clear()

	profiles, err := s.storage.LoadProfiles(ctx)
	s.readFailed = err != nil && !onlyCorrupt(err)
	switch {
	case s.readFailed:
		s.logger.Warn("could not read profiles, changes will not be saved",
			slog.Int("loaded", len(profiles)),
			slog.String("error", err.Error()),
		)
	case err != nil:
		s.logger.Warn("skipped corrupt profile records",
			slog.Int("loaded", len(profiles)),
			slog.String("error", err.Error()),
		)
	}

	for _, p := range profiles {
		s.put(p)
	}

	s.logger.Debug("profiles loaded", slog.Int("count", len(s.order)))
}

// Save writes every profile to storage, overwriting the previous snapshot
func (s *Store) Save(ctx context.Context) error {
	if s.readFailed {
		return fmt.Errorf("save profiles: %w", model.ErrStorageUnavailable)
	}
	if err := s.storage.SaveProfiles(ctx, s.All()); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}

// Flush saves the store and logs, rather than returns, any failure
func (s *Store) Flush(ctx context.Context) {
	if err := s.Save(ctx); err != nil {
		s.logger.Warn("profiles not persisted", slog.String("error", err.Error()))
	}
}

// Reset empties the store and persists the empty state
func (s *Store) Reset(ctx context.Context) {
	count := len(s.order)
	s.clear()
	s.Flush(ctx)

	s.logger.Info("leaderboard reset", slog.Int("removed", count))
}

// Get returns the profile registered under name
func (s *Store) Get(name string) (*model.Profile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrProfileNotFound, name)
	}
	return p, nil
}

// Exists reports whether a profile is registered under name
func (s *Store) Exists(name string) bool {
	_, ok := s.profiles[name]
	return ok
}

// Create registers a new profile. It does not persist; callers flush after mutating.
func (s *Store) Create(name, password string) (*model.Profile, error) {
	if !record.ValidToken(name) || !record.ValidToken(password) {
		return nil, model.ErrInvalidName
	}
	if s.Exists(name) {
		return nil, fmt.Errorf("%w: %s", model.ErrNameTaken, name)
	}

	p := model.NewProfile(name, password)
	s.put(p)
	return p, nil
}

// All returns every profile in store order: load order, then registration order
func (s *Store) All() []*model.Profile {
	out := make([]*model.Profile, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.profiles[name])
	}
	return out
}

// Len returns the number of profiles
func (s *Store) Len() int {
	return len(s.order)
}

// put inserts or replaces a profile; a replaced profile keeps its original position
func (s *Store) put(p *model.Profile) {
	if _, ok := s.profiles[p.Name]; !ok {
		s.order = append(s.order, p.Name)
	}
	s.profiles[p.Name] = p
}

func (s *Store) clear() {
	s.profiles = make(map[string]*model.Profile)
	s.order = nil
}

// onlyCorrupt reports whether every error joined into err is a corrupt record
func onlyCorrupt(err error) bool {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		errs := e.Unwrap()
		for _, inner := range errs {
			if !onlyCorrupt(inner) {
				return false
			}
		}
		return len(errs) > 0
	case interface{ Unwrap() error }:
		return onlyCorrupt(e.Unwrap())
	default:
		return errors.Is(err, model.ErrCorruptRecord)
	}
}
