package storage

import (
	"context"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Storage persists the full set of profiles as one snapshot.
// SaveProfiles replaces everything previously stored.
type Storage interface {
	// LoadProfiles returns every stored profile in storage order.
	// A missing backing store yields no profiles and no error. Corrupt records are
	// skipped; the remaining profiles are returned together with an error wrapping
	// model.ErrCorruptRecord.
	LoadProfiles(ctx context.Context) ([]*model.Profile, error)

	// SaveProfiles overwrites the stored snapshot with profiles
	SaveProfiles(ctx context.Context, profiles []*model.Profile) error

	// Close releases any underlying resources
	Close() error
}
