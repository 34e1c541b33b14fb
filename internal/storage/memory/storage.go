package memory

import (
	"context"

	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It keeps deep copies so later mutations of saved profiles are not visible until
// the next save.
type Storage struct {
	profiles []*model.Profile

	// LoadErr and SaveErr, when set, are returned by the matching operation
	LoadErr error
	SaveErr error

	saves int
}

// New creates a new in-memory storage instance
func New(profiles ...*model.Profile) *Storage {
	return &Storage{profiles: cloneAll(profiles)}
}

var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadProfiles(ctx context.Context) ([]*model.Profile, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return cloneAll(s.profiles), nil
}

func (s *Storage) SaveProfiles(ctx context.Context, profiles []*model.Profile) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.profiles = cloneAll(profiles)
	s.saves++
	return nil
}

func (s *Storage) Close() error {
	return nil
}

// Saves returns the number of successful saves
func (s *Storage) Saves() int {
	return s.saves
}

// Snapshot returns copies of the most recently saved profiles
func (s *Storage) Snapshot() []*model.Profile {
	return cloneAll(s.profiles)
}

func cloneAll(profiles []*model.Profile) []*model.Profile {
	if len(profiles) == 0 {
		return nil
	}
	out := make([]*model.Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.Clone()
	}
	return out
}
