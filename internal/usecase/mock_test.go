package usecase

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/devinvenable/github-stats/internal/domain"
	"github.com/devinvenable/github-stats/internal/gateway"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchProfile(ctx context.Context, login string) (*domain.Profile, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *mockFetcher) FetchEvents(ctx context.Context, login string) ([]domain.ActivityEvent, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEvent), args.Error(1)
}

func (m *mockFetcher) GetRateStatus(ctx context.Context) (*gateway.RateStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.RateStatus), args.Error(1)
}

// testLogger returns a logger that discards everything.
func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
