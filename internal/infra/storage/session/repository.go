package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
)

type entry struct {
	mu      sync.Mutex
	session *domain.BookingSession
}

// Repository in-memory хранилище сессий бронирования.
// Сессии не переживают перезапуск процесса.
type Repository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		entries: make(map[uuid.UUID]*entry),
	}
}

// Create сохраняет новую сессию
func (r *Repository) Create(_ context.Context, s *domain.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[s.ID]; ok {
		return ErrSessionExists
	}
	r.entries[s.ID] = &entry{session: s.Clone()}
	return nil
}

// Get возвращает копию сессии
func (r *Repository) Get(_ context.Context, id uuid.UUID) (*domain.BookingSession, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

// Update выполняет fn под блокировкой сессии и возвращает копию итогового состояния.
// Все изменения одной сессии сериализуются.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fn func(s *domain.BookingSession) error) (*domain.BookingSession, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	working := e.session.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	e.session = working

	return working.Clone(), nil
}

// Delete удаляет сессию
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.entries, id)
	return nil
}

// DeleteExpired удаляет сессии, не изменявшиеся с момента before. Возвращает их ID.
func (r *Repository) DeleteExpired(_ context.Context, before time.Time) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	expired := make([]uuid.UUID, 0)
	for id, e := range r.entries {
		e.mu.Lock()
		stale := e.session.UpdatedAt.Before(before)
		e.mu.Unlock()

		if stale {
			delete(r.entries, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// Count количество открытых сессий
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Repository) lookup(id uuid.UUID) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}
