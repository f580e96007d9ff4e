package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"gatepass/internal/model"
	"gatepass/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockGatePassRepository is a mock implementation of GatePassRepository.
type MockGatePassRepository struct {
	mock.Mock
}

func (m *MockGatePassRepository) Create(ctx context.Context, gatePass *model.GatePass) error {
	args := m.Called(ctx, gatePass)
	return args.Error(0)
}

func (m *MockGatePassRepository) FindByID(ctx context.Context, id uint) (*model.GatePass, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uint) *model.GatePass); ok {
		return fn(ctx, id), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GatePass), args.Error(1)
}

func (m *MockGatePassRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.GatePass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GatePass), args.Error(1)
}

func (m *MockGatePassRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.GatePass, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GatePass), args.Error(1)
}

func (m *MockGatePassRepository) ListPending(ctx context.Context) ([]model.GatePass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GatePass), args.Error(1)
}

func (m *MockGatePassRepository) ListResolved(ctx context.Context) ([]model.GatePass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GatePass), args.Error(1)
}

func (m *MockGatePassRepository) SetStatus(ctx context.Context, id uint, status model.GatePassStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockGatePassRepository) ResolvePending(ctx context.Context, id uint, status model.GatePassStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

// WithTransaction runs fn against the mock itself so expectations set on the
// repository also cover calls made inside the transaction.
func (m *MockGatePassRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.GatePassRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// memoryCache is an in-process ViewCache.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deletes int
	incrs   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.deletes++
	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(string(c.entries[key]), 10, 64)
	n++
	c.entries[key] = []byte(strconv.FormatInt(n, 10))
	c.incrs++
	return n, nil
}
