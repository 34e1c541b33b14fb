package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/rockpaperscissors/internal/model"
	filestorage "github.com/mcoot/rockpaperscissors/internal/storage/file"
	"github.com/mcoot/rockpaperscissors/internal/storage/memory"
	redisstorage "github.com/mcoot/rockpaperscissors/internal/storage/redis"
)

func TestNewDefaultsToFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.txt")
	app, err := New(context.Background(), Config{DataFile: path})
	require.NoError(t, err)
	defer app.Close()

	fs, ok := app.Storage.(*filestorage.Storage)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
}

func TestNewLoadsExistingProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.txt")
	require.NoError(t, filestorage.New(path).SaveProfiles(context.Background(), []*model.Profile{
		model.NewProfile("alice", "pw"),
	}))

	app, err := New(context.Background(), Config{DataFile: path})
	require.NoError(t, err)
	assert.True(t, app.Store.Exists("alice"))
}

func TestNewMemoryStorage(t *testing.T) {
	app, err := New(context.Background(), Config{StorageType: StorageTypeMemory})
	require.NoError(t, err)
	_, ok := app.Storage.(*memory.Storage)
	assert.True(t, ok)
}

func TestNewRedisStorage(t *testing.T) {
	mini := miniredis.RunT(t)
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	app, err := New(context.Background(), Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	require.NoError(t, err)
	defer app.Close()

	_, err = app.AuthService.Register(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.True(t, mini.Exists("rps:profiles"))
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "floppy"})
	assert.Error(t, err)
}

func TestTestAppLoadsSeed(t *testing.T) {
	app := NewTestApp(model.NewProfile("alice", "pw"))
	assert.Equal(t, 1, app.Store.Len())

	app.QueueComputerMoves(model.Scissors)
	assert.Equal(t, []int{int(model.Scissors)}, app.MockRandom.IntnResults)
}
