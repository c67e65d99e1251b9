package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"trustmate/database"
	"trustmate/database/repository"
	"trustmate/models"
	"trustmate/services/identity"
	"trustmate/services/notification"
)

// fakeTimer records a scheduled callback without running it. Tests fire
// callbacks explicitly through the fakeClock so delayed work is
// deterministic.
type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) NewTimer(d time.Duration, fn func()) timerHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Now() time.Time { return c.now }

// fire runs every pending timer scheduled with exactly the given delay and
// returns how many ran. Timers scheduled by a fired callback stay pending.
func (c *fakeClock) fire(d time.Duration) int {
	c.mu.Lock()
	var due []*fakeTimer
	for _, t := range c.timers {
		if t.delay == d && !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// pending counts unstopped, unfired timers with the given delay.
func (c *fakeClock) pending(d time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if t.delay == d && !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeDelivery struct {
	mu            sync.Mutex
	confirmations []notification.BookingDetails
	reminders     []string
}

func (d *fakeDelivery) SendBookingConfirmation(ctx context.Context, email string, details notification.BookingDetails) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.confirmations = append(d.confirmations, details)
	return true
}

func (d *fakeDelivery) SendReminder(ctx context.Context, email, title, body string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reminders = append(d.reminders, title)
	return true
}

func (d *fakeDelivery) confirmationCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.confirmations)
}

type testEnv struct {
	sess     *Session
	clock    *fakeClock
	bookings *repository.MemoryBookingRepo
	techs    *repository.MemoryTechnicianRepo
	delivery *fakeDelivery
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := newFakeClock()
	bookings := repository.NewMemoryBookingRepo(database.SeedBookings()...)
	techs := repository.NewMemoryTechnicianRepo(database.SeedTechnician())
	delivery := &fakeDelivery{}
	sess := New(Deps{
		Identity:    identity.NewMockIdentityService(),
		Bookings:    bookings,
		Technicians: techs,
		Delivery:    delivery,
		NewTimer:    clock.NewTimer,
		Now:         clock.Now,
	})
	return &testEnv{sess: sess, clock: clock, bookings: bookings, techs: techs, delivery: delivery}
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	e.sess.Login(context.Background(), "demo@example.com", "secret123")
	if e.sess.User() == nil {
		t.Fatal("login did not produce a signed-in user")
	}
	if got := e.sess.Current(); got != models.ScreenDashboard {
		t.Fatalf("after login current screen = %s, want %s", got, models.ScreenDashboard)
	}
}

// startDraft walks the session to wizard step 0 for service id "1".
func (e *testEnv) startDraft(t *testing.T) {
	t.Helper()
	e.sess.SelectService("1")
	e.sess.StartBooking()
	snap := e.sess.Snapshot()
	if !snap.Wizard.Active || snap.Wizard.Step != models.StepDateTime {
		t.Fatalf("wizard not at step 0 after start: active=%v step=%d", snap.Wizard.Active, snap.Wizard.Step)
	}
}

func statusNotifications(sess *Session) []models.Notification {
	var out []models.Notification
	for _, n := range sess.Notifications() {
		if n.Type == models.NotifStatus {
			out = append(out, n)
		}
	}
	return out
}
