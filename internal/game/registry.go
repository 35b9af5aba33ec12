package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

// Registry holds active game sessions in an expirable LRU. Sessions that
// outlive the TTL, or fall off the end of a full cache, are abandoned: the
// game instance is gone and no outcome is recorded, mirroring how a state
// error abandons an instance.
type Registry struct {
	lru *expirable.LRU[uuid.UUID, *session]
}

// NewRegistry creates a registry capped at size sessions with the given TTL.
func NewRegistry(size int, ttl time.Duration) *Registry {
	onEvict := func(id uuid.UUID, sess *session) {
		sess.mu.Lock()
		abandoned := !sess.state.Concluded()
		sess.mu.Unlock()
		if abandoned {
			slog.Default().Warn(LogMsgSessionEvicted, "game_id", id)
		}
	}
	return &Registry{
		lru: expirable.NewLRU[uuid.UUID, *session](size, onEvict, ttl),
	}
}

// Add stores a session under its id.
func (r *Registry) Add(sess *session) {
	r.lru.Add(sess.id, sess)
}

// Get retrieves an active session.
func (r *Registry) Get(id uuid.UUID) (*session, error) {
	sess, ok := r.lru.Get(id)
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return sess, nil
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id uuid.UUID) {
	r.lru.Remove(id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.lru.Len()
}
