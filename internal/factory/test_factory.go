package factory

import (
	"time"

	"github.com/vladia/corretora-go/internal/dependencies/mocks"
	"github.com/vladia/corretora-go/internal/services/geocode"
	"github.com/vladia/corretora-go/internal/services/token"
	"github.com/vladia/corretora-go/internal/storage/memory"
	"github.com/vladia/corretora-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a controllable clock
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(
		store,
		mockClock,
		[]byte("test-secret"),
		token.DefaultTTL,
		geocode.DefaultConfig(),
		testutil.NopLogger(),
	)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
