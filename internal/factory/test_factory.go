package factory

import (
	"context"
	"time"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/mocks"
	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage/memory"
	"github.com/mcoot/rockpaperscissors/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MemoryStorage *memory.Storage
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
}

// NewTestApp creates an App over in-memory storage with mocked dependencies.
// Any seed profiles are loaded into the store.
func NewTestApp(seed ...*model.Profile) *TestApp {
	store := memory.New(seed...)
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())
	app.Store.Load(context.Background())

	return &TestApp{
		App:           app,
		MemoryStorage: store,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
	}
}

// QueueComputerMoves makes the computer opponent play the given moves in order
func (t *TestApp) QueueComputerMoves(moves ...model.Move) {
	for _, m := range moves {
		t.MockRandom.QueueIntn(int(m))
	}
}
