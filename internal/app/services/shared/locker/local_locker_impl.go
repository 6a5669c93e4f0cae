package locker

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
)

type localLock struct {
	value     string
	expiresAt time.Time
}

// localLocker is the single-process LockerService used when Redis is not configured.
type localLocker struct {
	mu    sync.Mutex
	locks map[string]localLock
	now   func() time.Time
}

func NewLocalLocker() contracts.LockerService {
	return &localLocker{
		locks: make(map[string]localLock),
		now:   time.Now,
	}
}

func (l *localLocker) current(key string) (localLock, bool) {
	lock, ok := l.locks[key]
	if !ok {
		return localLock{}, false
	}
	if !l.now().Before(lock.expiresAt) {
		delete(l.locks, key)
		return localLock{}, false
	}
	return lock, true
}

func (l *localLocker) TryLock(_ context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.current(key); held {
		return false, "", nil
	}
	value := uuid.NewString()
	l.locks[key] = localLock{value: value, expiresAt: l.now().Add(expiration)}
	return true, value, nil
}

func (l *localLocker) Unlock(_ context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, held := l.current(key)
	if !held {
		return nil
	}
	if lock.value != lockValue {
		return exceptions.ErrRedisUnlock(errLockNotOwned)
	}
	delete(l.locks, key)
	return nil
}

func (l *localLocker) Refresh(_ context.Context, key, lockValue string, expiration time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, held := l.current(key)
	if !held || lock.value != lockValue {
		return exceptions.ErrRedisLockRefresh(errLockNotOwned)
	}
	lock.expiresAt = l.now().Add(expiration)
	l.locks[key] = lock
	return nil
}
