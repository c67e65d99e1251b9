package session

import (
	"errors"
	"testing"

	"trustmate/database"
	"trustmate/database/repository"
	"trustmate/services/identity"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	clock := newFakeClock()
	return NewManager(Deps{
		Identity:    identity.NewMockIdentityService(),
		Bookings:    repository.NewMemoryBookingRepo(database.SeedBookings()...),
		Technicians: repository.NewMemoryTechnicianRepo(database.SeedTechnician()),
		Delivery:    &fakeDelivery{},
		NewTimer:    clock.NewTimer,
		Now:         clock.Now,
	}, nil)
}

func TestManagerTokenResolvesSession(t *testing.T) {
	m := newTestManager(t)

	sess, token, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token == "" {
		t.Fatal("Create returned an empty token")
	}
	if m.Count() != 1 {
		t.Fatalf("Count = %d, want 1", m.Count())
	}

	resolved, err := m.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.ID() != sess.ID() {
		t.Fatalf("resolved session %s, want %s", resolved.ID(), sess.ID())
	}

	got, err := m.Get(sess.ID())
	if err != nil || got != sess {
		t.Fatalf("Get = %v, %v", got, err)
	}
}

func TestManagerRejectsBadTokens(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Resolve("garbage"); err == nil {
		t.Fatal("garbage token resolved")
	}
	if _, err := m.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get(missing) = %v, want ErrSessionNotFound", err)
	}
}

func TestManagerEvict(t *testing.T) {
	m := newTestManager(t)

	sess, token, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	m.Evict(sess.ID())
	if m.Count() != 0 {
		t.Fatalf("Count after evict = %d", m.Count())
	}
	if _, err := m.Resolve(token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Resolve after evict = %v, want ErrSessionNotFound", err)
	}

	// Evicting twice is harmless.
	m.Evict(sess.ID())
}

func TestManagerShutdownEmptiesRegistry(t *testing.T) {
	m := newTestManager(t)

	for i := 0; i < 3; i++ {
		if _, _, err := m.Create(); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	m.Shutdown()
	if m.Count() != 0 {
		t.Fatalf("Count after shutdown = %d", m.Count())
	}
}
