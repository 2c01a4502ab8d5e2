package planner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-day-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

var ErrSessionNotFound = errors.New("planner session not found")

type sessionEntry struct {
	mu        sync.Mutex
	id        uuid.UUID
	session   *Session
	createdAt time.Time
	updatedAt time.Time
}

// SessionStore keeps planner sessions in memory and expires them after a period
// of inactivity.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore(ttl, cleanup time.Duration) *SessionStore {
	c := cache.New(ttl, cleanup)
	c.OnEvicted(func(string, interface{}) {
		metrics.Get().SessionsActive.Add(context.Background(), -1)
	})
	return &SessionStore{cache: c}
}

func (st *SessionStore) Add(ctx context.Context, session *Session) uuid.UUID {
	now := time.Now()
	entry := &sessionEntry{
		id:        uuid.New(),
		session:   session,
		createdAt: now,
		updatedAt: now,
	}
	st.cache.Set(entry.id.String(), entry, cache.DefaultExpiration)
	metrics.Get().SessionsActive.Add(ctx, 1)
	return entry.id
}

// With runs fn while holding the session's lock, then refreshes its expiry.
// The lock covers the whole callback, including a provider call made by
// CreateItinerary, so Snapshot of the same session waits up to llm.timeout.
// Other sessions are unaffected.
func (st *SessionStore) With(id uuid.UUID, fn func(*Session) error) error {
	entry, err := st.get(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	err = fn(entry.session)
	entry.updatedAt = time.Now()
	// Replace fails when the session was deleted meanwhile; it stays deleted.
	_ = st.cache.Replace(id.String(), entry, cache.DefaultExpiration)
	return err
}

func (st *SessionStore) Snapshot(id uuid.UUID) (*types.PlannerSessionSnapshot, error) {
	entry, err := st.get(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return snapshot(entry), nil
}

func (st *SessionStore) Delete(id uuid.UUID) error {
	if _, err := st.get(id); err != nil {
		return err
	}
	st.cache.Delete(id.String())
	return nil
}

func (st *SessionStore) Count() int {
	return st.cache.ItemCount()
}

func (st *SessionStore) get(id uuid.UUID) (*sessionEntry, error) {
	v, found := st.cache.Get(id.String())
	if !found {
		return nil, ErrSessionNotFound
	}
	return v.(*sessionEntry), nil
}

func snapshot(entry *sessionEntry) *types.PlannerSessionSnapshot {
	return &types.PlannerSessionSnapshot{
		ID:        entry.id,
		City:      entry.session.City(),
		Interests: entry.session.Interests(),
		Itinerary: entry.session.Itinerary(),
		Messages:  entry.session.Messages(),
		CreatedAt: entry.createdAt,
		UpdatedAt: entry.updatedAt,
	}
}
