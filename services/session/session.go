// Package session implements the client session core: the screen-navigation
// stack, per-form validation gates, the three-step booking wizard and the
// post-commit status simulation. It is rendering-agnostic; a client observes
// the session through snapshots emitted after every mutation.
package session

import (
	"sync"
	"time"

	"trustmate/database/repository"
	"trustmate/models"
	"trustmate/services/identity"
	"trustmate/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockPrice is the flat demo rate charged for every booking.
const MockPrice float64 = 32

// MockTechnicianName is the demo technician assigned to every new booking.
const MockTechnicianName = "Mike Reynolds"

// Status simulation offsets, anchored at commit time.
const (
	confirmationViewDelay = 4 * time.Second
	assignedDelay         = 8 * time.Second
	startedDelay          = 20 * time.Second
	completedDelay        = 35 * time.Second
)

const trackingTickInterval = 50 * time.Millisecond

// timerHandle abstracts a cancellable one-shot timer so tests can fire
// scheduled work deterministically.
type timerHandle interface {
	Stop() bool
}

type timerFactory func(d time.Duration, fn func()) timerHandle

type realTimer struct{ *time.Timer }

func defaultTimerFactory(d time.Duration, fn func()) timerHandle {
	return realTimer{time.AfterFunc(d, fn)}
}

// ReminderScheduler enqueues a delayed reminder for an upcoming booking.
// Optional; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking, email, serviceName string) error
}

// Deps bundles the collaborators a session calls out to. Identity, Bookings,
// Technicians and Delivery are required; Reminders, NewTimer, Now and Logger
// have working defaults.
type Deps struct {
	Identity    identity.IdentityService
	Bookings    repository.BookingRepository
	Technicians repository.TechnicianRepository
	Delivery    notification.DeliveryService
	Reminders   ReminderScheduler
	Logger      *zap.Logger
	NewTimer    timerFactory
	Now         func() time.Time
}

// Session holds all state owned by one client session. Every mutation is
// serialized through mu, so timer callbacks and user actions interleave the
// way the single-threaded event loop they model would.
type Session struct {
	id   string
	deps Deps

	mu sync.Mutex

	// Navigation.
	history   []models.Screen
	direction models.TransitionDirection

	// Auth and form state.
	user         *models.User
	loading      bool
	bannerError  string
	fieldErrors  map[string]string
	forgotMobile string

	// Notifications.
	notifications []models.Notification
	prefs         models.NotificationPrefs

	// Payment methods.
	paymentMethods    []models.PaymentMethod
	selectedPaymentID string

	// Booking flow.
	selectedServiceID string
	technician        *models.Technician
	wizardActive      bool
	wizardStep        models.WizardStep
	draft             *models.BookingDraft
	bookingComplete   bool

	// Booking list (read-through cache of the repository).
	bookings        []models.Booking
	cancelBookingID string
	ratingBookingID string

	// Tracking.
	trackingBookingID string
	trackingProgress  float64
	trackingTicks     int
	trackingGen       int
	trackingTimer     timerHandle

	// Scheduled work.
	simTimers    map[string][]timerHandle
	confirmTimer timerHandle

	// onChange is invoked with a fresh snapshot after every mutation.
	onChange func(models.SessionSnapshot)
}

// New creates a session showing the login screen, seeded with the default
// payment methods and the welcome notification.
func New(deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.NewTimer == nil {
		deps.NewTimer = defaultTimerFactory
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	s := &Session{
		id:        uuid.New().String(),
		deps:      deps,
		history:   []models.Screen{models.ScreenLogin},
		direction: models.DirectionNone,
		prefs:     models.NotificationPrefs{Push: true, Email: true, SMS: false},
		paymentMethods: []models.PaymentMethod{
			{ID: models.DefaultPaymentMethodID, Type: models.PaymentCash, Label: "Cash on Delivery"},
			{ID: "c1", Type: models.PaymentCard, Brand: "visa", Last4: "4242", Expiry: "12/25", Label: "Visa ending in 4242"},
		},
		selectedPaymentID: models.DefaultPaymentMethodID,
		simTimers:         make(map[string][]timerHandle),
	}
	s.notifications = []models.Notification{{
		ID:      uuid.New().String(),
		Title:   "Welcome to TrustMate!",
		Message: "Find the best technicians for your home needs.",
		Date:    deps.Now(),
		Read:    false,
		Type:    models.NotifPromo,
	}}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SetOnChange registers the snapshot listener. The callback runs outside the
// session lock.
func (s *Session) SetOnChange(fn func(models.SessionSnapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Logout tears the session down to a fresh login screen: the user is cleared,
// every scheduled emission and ticker is cancelled, and the navigation stack
// is recreated.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.forgotMobile = ""
	s.selectedServiceID = ""
	s.discardWizardLocked()
	s.bookings = nil
	s.cancelBookingID = ""
	s.ratingBookingID = ""
	s.cancelAllTimersLocked()
	s.resetLocked(models.ScreenLogin)
	s.mu.Unlock()
	s.notifyChange()
}

// Teardown cancels all scheduled work without mutating visible state. Used
// when the session is evicted.
func (s *Session) Teardown() {
	s.mu.Lock()
	s.cancelAllTimersLocked()
	s.mu.Unlock()
}

func (s *Session) cancelAllTimersLocked() {
	for id, handles := range s.simTimers {
		for _, h := range handles {
			h.Stop()
		}
		delete(s.simTimers, id)
	}
	if s.confirmTimer != nil {
		s.confirmTimer.Stop()
		s.confirmTimer = nil
	}
	s.stopTrackingTimerLocked()
}

// beginCall latches the loading flag. It returns false when a call is already
// in flight, which rejects duplicate submissions.
func (s *Session) beginCallLocked() bool {
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

func (s *Session) logger() *zap.Logger { return s.deps.Logger }

// notifyChange emits a snapshot to the registered listener.
func (s *Session) notifyChange() {
	s.mu.Lock()
	fn := s.onChange
	var snap models.SessionSnapshot
	if fn != nil {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}
