package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
)

// MemorySession keeps sessions in process memory.
type MemorySession struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// NewMemorySessionRepository - expired entries are dropped on read and by PurgeExpired.
func NewMemorySessionRepository(ttl time.Duration) *MemorySession {
	return &MemorySession{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (that *MemorySession) Save(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = memoryEntry{
		session:   *session,
		expiresAt: that.now().Add(that.ttl),
	}

	return nil
}

// GetByID returns a copy; callers must Save to persist changes.
func (that *MemorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	entry, ok := that.sessions[id]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	if that.expired(entry) {
		that.mu.Lock()
		delete(that.sessions, id)
		that.mu.Unlock()

		return nil, apperror.ErrSessionNotFound
	}

	session := entry.session
	return &session, nil
}

func (that *MemorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)
	return nil
}

// PurgeExpired removes expired sessions and returns how many were dropped.
func (that *MemorySession) PurgeExpired() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	purged := 0
	for id, entry := range that.sessions {
		if that.expired(entry) {
			delete(that.sessions, id)
			purged++
		}
	}

	return purged
}

// RunJanitor purges expired sessions every interval until ctx is done.
func (that *MemorySession) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.PurgeExpired()
		}
	}
}

func (that *MemorySession) expired(entry memoryEntry) bool {
	return that.ttl > 0 && that.now().After(entry.expiresAt)
}
