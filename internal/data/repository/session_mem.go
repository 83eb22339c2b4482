package repository

import (
	"context"
	"fmt"
	"time"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

type memorySessionRepository struct {
	store *MemoryStore
}

func NewMemorySessionRepository(store *MemoryStore) SessionRepository {
	return &memorySessionRepository{store: store}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *memorySessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[id]
	if !ok {
		return nil, nil
	}
	return cloneSession(session), nil
}

func (r *memorySessionRepository) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[id]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session %s: %w", id.String(), entity.ErrNotFound)
	}

	session.RevokedAt = &at
	return nil
}
