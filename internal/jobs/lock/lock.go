package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotAcquired is returned when another owner holds the key
var ErrLockNotAcquired = errors.New("failed to acquire job lock")

// Locker grants exclusive, expiring ownership of a key
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (*Lock, error)
}

// Lock is a held key. Release gives it up early; otherwise it expires
// after its TTL.
type Lock struct {
	key     string
	owner   string
	release func(ctx context.Context) error
	once    sync.Once
	err     error
}

// Key returns the locked key
func (l *Lock) Key() string {
	return l.key
}

// Owner returns the token identifying this holder
func (l *Lock) Owner() string {
	return l.owner
}

// Release gives the key up if this holder still owns it. Calling Release
// more than once is a no-op.
func (l *Lock) Release(ctx context.Context) error {
	if l == nil {
		return nil
	}
	l.once.Do(func() {
		l.err = l.release(ctx)
	})
	return l.err
}

// LocalLocker is an in-process Locker for single-instance deployments
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]localEntry
	now  func() time.Time
}

type localEntry struct {
	owner   string
	expires time.Time
}

// NewLocalLocker creates a new LocalLocker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held: make(map[string]localEntry),
		now:  time.Now,
	}
}

// Acquire implements Locker
func (l *LocalLocker) Acquire(_ context.Context, key string, ttl time.Duration) (*Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if entry, ok := l.held[key]; ok && now.Before(entry.expires) {
		return nil, ErrLockNotAcquired
	}

	owner := uuid.NewString()
	l.held[key] = localEntry{owner: owner, expires: now.Add(ttl)}

	return &Lock{
		key:   key,
		owner: owner,
		release: func(context.Context) error {
			l.mu.Lock()
			defer l.mu.Unlock()
			if entry, ok := l.held[key]; ok && entry.owner == owner {
				delete(l.held, key)
			}
			return nil
		},
	}, nil
}
