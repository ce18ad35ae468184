package services_test

import (
	"context"
	"time"

	"djurdata-ai/internal/models"
	"djurdata-ai/internal/repositories"
	"djurdata-ai/pkg/redis"

	"github.com/stretchr/testify/mock"
)

// MockModerationRepository is a testify mock of repositories.ModerationRepository.
type MockModerationRepository struct {
	mock.Mock
}

func (m *MockModerationRepository) GetViolation(userID string) (*models.UserViolation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserViolation), args.Error(1)
}

func (m *MockModerationRepository) InsertFlag(flag *models.FlaggedMessage) error {
	args := m.Called(flag)
	return args.Error(0)
}

func (m *MockModerationRepository) IncrementViolation(userID string) (int, bool, error) {
	args := m.Called(userID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockModerationRepository) MarkBlocked(userID, reason string) (bool, error) {
	args := m.Called(userID, reason)
	return args.Bool(0), args.Error(1)
}

func (m *MockModerationRepository) AdminBlock(userID, reason string) error {
	args := m.Called(userID, reason)
	return args.Error(0)
}

func (m *MockModerationRepository) Unblock(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockModerationRepository) GetFlag(flagID string) (*models.FlaggedMessage, error) {
	args := m.Called(flagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlaggedMessage), args.Error(1)
}

func (m *MockModerationRepository) MarkFlagReviewed(flagID, adminID string) error {
	args := m.Called(flagID, adminID)
	return args.Error(0)
}

func (m *MockModerationRepository) ListFlagged(unreviewedOnly bool) ([]models.FlaggedMessage, error) {
	args := m.Called(unreviewedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlaggedMessage), args.Error(1)
}

func (m *MockModerationRepository) ListViolations() ([]models.UserViolation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserViolation), args.Error(1)
}

func (m *MockModerationRepository) InsertAdminAction(action *models.AdminAction) error {
	args := m.Called(action)
	return args.Error(0)
}

func (m *MockModerationRepository) ListAdminActions(limit int) ([]models.AdminAction, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminAction), args.Error(1)
}

var _ repositories.ModerationRepository = (*MockModerationRepository)(nil)

// fakeRedis is an in-memory stand-in for the Redis repository.
type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Set(key string, data []byte, expiredTime time.Duration, ctx context.Context) error {
	f.data[key] = string(data)
	return nil
}

func (f *fakeRedis) Get(key string, ctx context.Context) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return value, nil
}

func (f *fakeRedis) Del(key string, ctx context.Context) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedis) TTL(key string, ctx context.Context) (time.Duration, error) {
	return 0, nil
}

var _ redis.IRedisRepositories = (*fakeRedis)(nil)
