package file

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage"
	"github.com/mcoot/rockpaperscissors/internal/storage/record"
)

// DefaultPath is the data file used when none is configured
const DefaultPath = "leaderboard.txt"

// Storage keeps profiles in a flat text file of five-line records.
// Every save rewrites the whole file in place.
type Storage struct {
	path string
}

// New creates a file storage backed by path
func New(path string) *Storage {
	if path == "" {
		path = DefaultPath
	}
	return &Storage{path: path}
}

var _ storage.Storage = (*Storage)(nil)

// Path returns the backing file path
func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) LoadProfiles(ctx context.Context) ([]*model.Profile, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return record.Decode(f)
}

func (s *Storage) SaveProfiles(ctx context.Context, profiles []*model.Profile) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}

	if err := record.Encode(f, profiles); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (s *Storage) Close() error {
	return nil
}
