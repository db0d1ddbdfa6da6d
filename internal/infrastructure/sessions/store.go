package sessions

import (
	"sync"
	"time"

	"github.com/cochlearspare/backend/internal/domain"
)

// Store is a thread-safe in-memory session store with idle-TTL expiry.
// Sessions never outlive the process; there is no persistence.
type Store struct {
	ttl     time.Duration
	data    map[string]*domain.Session
	mutex   sync.RWMutex
	stop    chan struct{}
	stopped sync.Once
}

// NewStore creates a session store. Sessions idle longer than ttl are
// evicted by a background sweep every 10 minutes.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		ttl:  ttl,
		data: make(map[string]*domain.Session),
		stop: make(chan struct{}),
	}
	go s.cleanupExpired()
	return s
}

// Create registers a new session
func (s *Store) Create(session *domain.Session) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[session.ID] = session
	return nil
}

// Get retrieves a live session and refreshes its idle timer
func (s *Store) Get(id string) (*domain.Session, error) {
	s.mutex.RLock()
	session, exists := s.data[id]
	s.mutex.RUnlock()
	if !exists {
		return nil, domain.ErrSessionNotFound
	}

	session.Lock()
	if time.Since(session.LastSeen) > s.ttl {
		session.Unlock()
		_ = s.Delete(id)
		return nil, domain.ErrSessionNotFound
	}
	session.LastSeen = time.Now()
	session.Unlock()

	return session, nil
}

// Delete removes a session
func (s *Store) Delete(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.data, id)
	return nil
}

// Len reports the number of live sessions
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Close stops the cleanup goroutine
func (s *Store) Close() {
	s.stopped.Do(func() { close(s.stop) })
}

// cleanupExpired sweeps idle sessions every 10 minutes
func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mutex.Lock()
			for id, session := range s.data {
				session.Lock()
				expired := time.Since(session.LastSeen) > s.ttl
				session.Unlock()
				if expired {
					delete(s.data, id)
				}
			}
			s.mutex.Unlock()
		}
	}
}
