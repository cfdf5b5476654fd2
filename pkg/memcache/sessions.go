// pkg/memcache/sessions.go
package mem

import (
	"sync"
	"time"

	"wayfare/internal/planner"
)

type sessionKey struct {
	UserID      string
	ItineraryID int64
}

type sessionEntry struct {
	store     *planner.Store
	expiresAt time.Time
}

// SessionRegistry keeps one planner store per user+itinerary pair, expiring
// idle sessions after the configured TTL. Access refreshes the expiry.
type SessionRegistry struct {
	mu   sync.Mutex
	data map[sessionKey]*sessionEntry
	ttl  time.Duration
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		data: make(map[sessionKey]*sessionEntry),
		ttl:  ttl,
	}
}

// GetOrCreate returns the live session for the pair, building it with create
// when absent or expired. The second result reports whether a new session
// was created.
func (r *SessionRegistry) GetOrCreate(userID string, itineraryID int64, create func() *planner.Store) (*planner.Store, bool) {
	k := sessionKey{UserID: userID, ItineraryID: itineraryID}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if e, ok := r.data[k]; ok && now.Before(e.expiresAt) {
		e.expiresAt = now.Add(r.ttl)
		return e.store, false
	}

	store := create()
	r.data[k] = &sessionEntry{store: store, expiresAt: now.Add(r.ttl)}
	r.sweepLocked(now)
	return store, true
}

// Drop discards the session for the pair, if any.
func (r *SessionRegistry) Drop(userID string, itineraryID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, sessionKey{UserID: userID, ItineraryID: itineraryID})
}

func (r *SessionRegistry) sweepLocked(now time.Time) {
	for k, e := range r.data {
		if now.After(e.expiresAt) {
			delete(r.data, k)
		}
	}
}
