package usecase

import (
	"context"
	"time"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/formrelay"
	"github.com/artdevata/content-service/internal/port/likestore"
	"github.com/stretchr/testify/mock"
)

type MockSource struct{ mock.Mock }

func (m *MockSource) List(ctx context.Context, contentType string) ([]*entity.Content, error) {
	args := m.Called(ctx, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Content), args.Error(1)
}
func (m *MockSource) Get(ctx context.Context, contentType string, id string) (*entity.Content, error) {
	args := m.Called(ctx, contentType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}
func (m *MockSource) ListClients(ctx context.Context) ([]*entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Client), args.Error(1)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockLikePublisher struct{ mock.Mock }

func (m *MockLikePublisher) PublishContentLiked(ctx context.Context, contentType, contentID string, count int64) error {
	args := m.Called(ctx, contentType, contentID, count)
	return args.Error(0)
}
func (m *MockLikePublisher) PublishContentUnliked(ctx context.Context, contentType, contentID string, count int64) error {
	args := m.Called(ctx, contentType, contentID, count)
	return args.Error(0)
}

type MockRelaySender struct{ mock.Mock }

func (m *MockRelaySender) Send(ctx context.Context, submission formrelay.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) SendEmail(to []string, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// fakeLikeStore is a map-backed store so toggle sequences read their own
// writes, which testify mocks make awkward.
type fakeLikeStore struct {
	flags  map[string]bool
	counts map[string]int64
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{
		flags:  make(map[string]bool),
		counts: make(map[string]int64),
	}
}

func (s *fakeLikeStore) GetFlag(ctx context.Context, key string) (bool, error) {
	v, ok := s.flags[key]
	if !ok {
		return false, likestore.ErrNotFound
	}
	return v, nil
}
func (s *fakeLikeStore) SetFlag(ctx context.Context, key string, value bool) error {
	s.flags[key] = value
	return nil
}
func (s *fakeLikeStore) GetCount(ctx context.Context, key string) (int64, error) {
	v, ok := s.counts[key]
	if !ok {
		return 0, likestore.ErrNotFound
	}
	return v, nil
}
func (s *fakeLikeStore) SetCount(ctx context.Context, key string, value int64) error {
	s.counts[key] = value
	return nil
}
func (s *fakeLikeStore) Delete(ctx context.Context, key string) error {
	delete(s.flags, key)
	delete(s.counts, key)
	return nil
}
