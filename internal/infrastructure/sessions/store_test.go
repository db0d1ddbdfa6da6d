package sessions

import (
	"errors"
	"testing"
	"time"

	"github.com/cochlearspare/backend/internal/domain"
)

func newSession(id string) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:        id,
		Page:      domain.PageHome,
		Country:   domain.DefaultCountry,
		CreatedAt: now,
		LastSeen:  now,
	}
}

func TestStoreCreateGetDelete(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()

	if err := store.Create(newSession("s1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("len = %d, want 1", store.Len())
	}

	got, err := store.Get("s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "s1" {
		t.Errorf("id = %s, want s1", got.ID)
	}

	if _, err := store.Get("missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}

	if err := store.Delete("s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get("s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound after delete", err)
	}
}

func TestStoreIdleExpiry(t *testing.T) {
	store := NewStore(50 * time.Millisecond)
	defer store.Close()

	if err := store.Create(newSession("s1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// an active session survives its TTL because Get refreshes the timer
	time.Sleep(30 * time.Millisecond)
	if _, err := store.Get("s1"); err != nil {
		t.Fatalf("active session expired early: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, err := store.Get("s1"); err != nil {
		t.Fatalf("refreshed session expired: %v", err)
	}

	// an idle session is gone on the next access
	time.Sleep(80 * time.Millisecond)
	if _, err := store.Get("s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound for idle session", err)
	}
	if store.Len() != 0 {
		t.Errorf("len = %d, want 0 after expiry", store.Len())
	}
}

func TestStoreGetTouchesLastSeen(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()

	session := newSession("s1")
	session.LastSeen = time.Now().Add(-time.Minute)
	if err := store.Create(session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get("s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Lock()
	age := time.Since(got.LastSeen)
	got.Unlock()
	if age > time.Second {
		t.Errorf("LastSeen not refreshed, age = %v", age)
	}
}
