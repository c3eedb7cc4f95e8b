package factory

import (
	"context"
	"time"

	"github.com/mcoot/betdesk/internal/dependencies/mocks"
	"github.com/mcoot/betdesk/internal/storage/memory"
	"github.com/mcoot/betdesk/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadDefaultSeed applies the stock bootstrap set to the test app's storage
func (t *TestApp) LoadDefaultSeed() error {
	return applySeed(context.Background(), t.Storage, t.Clock, DefaultSeed())
}
