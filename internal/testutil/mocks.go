package testutil

import (
	"context"

	"studyenglish/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLookupClient is a mock for the dictionary lookup client
type MockLookupClient struct {
	mock.Mock
}

func (m *MockLookupClient) Lookup(ctx context.Context, word string) domain.Outcome {
	args := m.Called(ctx, word)
	return args.Get(0).(domain.Outcome)
}
