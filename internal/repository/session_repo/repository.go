package session_repo

import (
	"context"
	"errors"
	"roulette_patterns/internal/model"
	"sync"
	"time"
)

type entry[T any] struct {
	session  model.Session
	state    T
	lastSeen time.Time
}

// Repo Сессии в памяти процесса
type Repo[T any] struct {
	mtx      sync.RWMutex
	sessions map[string]*entry[T]
	idleTTL  time.Duration
	now      func() time.Time
}

// NewSessionRepository Конструктор реестра. idleTTL <= 0 отключает удаление по простою
func NewSessionRepository[T any](idleTTL time.Duration) *Repo[T] {
	return &Repo[T]{
		sessions: make(map[string]*entry[T]),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Create - регистрирует новую сессию вместе с её состоянием
func (r *Repo[T]) Create(_ context.Context, session *model.Session, state T) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return errors.New("session already exists")
	}
	r.sessions[session.ID] = &entry[T]{
		session:  *session,
		state:    state,
		lastSeen: r.now(),
	}
	return nil
}

// Get - возвращает состояние сессии и продлевает её жизнь.
// Просроченная сессия удаляется и считается ненайденной
func (r *Repo[T]) Get(_ context.Context, sessionID string) (T, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var zero T
	e, ok := r.sessions[sessionID]
	if !ok {
		return zero, model.ErrSessionNotFound
	}

	now := r.now()
	if r.expired(e, now) {
		delete(r.sessions, sessionID)
		return zero, model.ErrSessionNotFound
	}
	e.lastSeen = now
	return e.state, nil
}

// Delete - закрывает сессию
func (r *Repo[T]) Delete(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return model.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *Repo[T]) Sweep(now time.Time) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len Количество живых сессий
func (r *Repo[T]) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.sessions)
}

func (r *Repo[T]) expired(e *entry[T], now time.Time) bool {
	if !e.session.ExpiresAt.IsZero() && now.After(e.session.ExpiresAt) {
		return true
	}
	return r.idleTTL > 0 && now.Sub(e.lastSeen) > r.idleTTL
}
