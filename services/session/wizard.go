package session

import (
	"context"
	"strconv"
	"time"

	"trustmate/models"
	"trustmate/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SelectService opens the detail screen for a catalog entry. Unknown ids are
// ignored.
func (s *Session) SelectService(serviceID string) {
	if _, ok := models.ServiceByID(serviceID); !ok {
		return
	}
	s.mu.Lock()
	s.selectedServiceID = serviceID
	s.pushLocked(models.ScreenServiceDetail)
	s.mu.Unlock()
	s.notifyChange()
}

// StartBooking enters the wizard at step 0 with a fresh draft: the date
// defaults to today and the address to the user's profile address, so only
// the time slot gates the first step.
func (s *Session) StartBooking() {
	s.mu.Lock()
	if s.selectedServiceID == "" {
		s.mu.Unlock()
		return
	}
	address := ""
	if s.user != nil {
		address = s.user.Address
	}
	s.wizardActive = true
	s.wizardStep = models.StepDateTime
	s.bookingComplete = false
	s.draft = &models.BookingDraft{
		ServiceID: s.selectedServiceID,
		Date:      s.deps.Now(),
		Address:   address,
		PaymentID: s.selectedPaymentID,
	}
	s.pushLocked(models.ScreenBooking)
	s.mu.Unlock()
	s.notifyChange()
}

// SetDraftDate picks the appointment date.
func (s *Session) SetDraftDate(date time.Time) {
	s.updateDraft(func(d *models.BookingDraft) { d.Date = date })
}

// SetDraftTime picks the appointment slot.
func (s *Session) SetDraftTime(slot string) {
	s.updateDraft(func(d *models.BookingDraft) { d.Time = slot })
}

// SetDraftAddress sets the service address.
func (s *Session) SetDraftAddress(address string) {
	s.updateDraft(func(d *models.BookingDraft) { d.Address = address })
}

// SetDraftDescription sets the job description.
func (s *Session) SetDraftDescription(description string) {
	s.updateDraft(func(d *models.BookingDraft) { d.Description = description })
}

func (s *Session) updateDraft(mutate func(*models.BookingDraft)) {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return
	}
	d := *s.draft
	mutate(&d)
	s.draft = &d
	s.mu.Unlock()
	s.notifyChange()
}

// AdvanceWizard moves one step forward when the current step's completion
// predicate holds; otherwise the step is unchanged. Step 0 requires a time
// slot (the date always has a default), step 1 requires address and
// description, step 2 commits via Commit instead.
func (s *Session) AdvanceWizard() {
	s.mu.Lock()
	if !s.wizardActive || s.draft == nil {
		s.mu.Unlock()
		return
	}
	advanced := false
	switch s.wizardStep {
	case models.StepDateTime:
		if s.draft.Time != "" {
			s.wizardStep = models.StepDetails
			advanced = true
		}
	case models.StepDetails:
		if s.draft.Address != "" && s.draft.Description != "" {
			s.wizardStep = models.StepReview
			advanced = true
		}
	}
	s.mu.Unlock()
	if advanced {
		s.notifyChange()
	}
}

// BackWizard steps backwards. At step 0 the wizard exits entirely and the
// draft is discarded; at later steps only the step index moves, so every
// field entered so far survives forward re-entry.
func (s *Session) BackWizard() {
	s.mu.Lock()
	if !s.wizardActive {
		s.mu.Unlock()
		return
	}
	if s.wizardStep > models.StepDateTime {
		s.wizardStep--
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.discardWizardLocked()
	s.popLocked()
	s.mu.Unlock()
	s.notifyChange()
}

func (s *Session) discardWizardLocked() {
	s.wizardActive = false
	s.wizardStep = models.StepDateTime
	s.draft = nil
	s.bookingComplete = false
}

// Commit converts the draft into a persisted booking. It only acts from the
// review step with a complete draft; anything else, including a repeat call
// while the confirmation view is open, is a silent no-op. On acknowledgement
// the confirmation view is shown for a fixed delay, a confirmation email goes
// out best-effort, and the status simulation is scheduled when the view
// closes.
func (s *Session) Commit(ctx context.Context) {
	s.mu.Lock()
	if !s.wizardActive || s.bookingComplete || s.wizardStep != models.StepReview ||
		s.draft == nil || s.draft.ServiceID == "" || s.draft.Date.IsZero() {
		s.mu.Unlock()
		return
	}
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	draft := *s.draft
	userID := ""
	userEmail := ""
	if s.user != nil {
		userID = s.user.ID
		userEmail = s.user.Email
	}
	now := s.deps.Now()
	s.mu.Unlock()
	s.notifyChange()

	booking := models.Booking{
		ID:             uuid.New().String(),
		UserID:         userID,
		ServiceID:      draft.ServiceID,
		Date:           draft.Date,
		Time:           draft.Time,
		Status:         models.StatusUpcoming,
		TechnicianName: MockTechnicianName,
		Address:        draft.Address,
		Description:    draft.Description,
		Price:          MockPrice,
		CreatedAt:      now,
	}

	err := s.deps.Bookings.Create(ctx, &booking)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.logger().Error("booking creation failed", zap.Error(err))
		s.bannerError = genericErrorBanner
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.bookingComplete = true
	s.bookings = append([]models.Booking{booking}, s.bookings...)
	s.confirmTimer = s.deps.NewTimer(confirmationViewDelay, func() { s.finishCommit(booking) })
	s.mu.Unlock()

	service, _ := models.ServiceByID(booking.ServiceID)
	s.sendConfirmationEmail(ctx, userEmail, service.Label, booking)
	if s.deps.Reminders != nil {
		if err := s.deps.Reminders.ScheduleBookingReminder(booking, userEmail, service.Label); err != nil {
			s.logger().Warn("failed to schedule booking reminder", zap.Error(err))
		}
	}
	s.notifyChange()
}

// sendConfirmationEmail is fire-and-forget: a delivery failure never rolls
// the booking back.
func (s *Session) sendConfirmationEmail(ctx context.Context, email, serviceName string, b models.Booking) {
	if email == "" {
		email = "user@example.com"
	}
	details := notification.BookingDetails{
		ServiceName:    serviceName,
		TechnicianName: b.TechnicianName,
		Date:           b.Date.Format("1/2/2006"),
		Time:           b.Time,
		Address:        b.Address,
		Price:          b.Price,
	}
	if ok := s.deps.Delivery.SendBookingConfirmation(ctx, email, details); !ok {
		s.logger().Warn("booking confirmation email was not delivered", zap.String("booking", b.ID))
	}
}

// finishCommit closes the confirmation view: back to the dashboard and start
// the status simulation for the new booking.
func (s *Session) finishCommit(booking models.Booking) {
	s.mu.Lock()
	s.discardWizardLocked()
	s.selectedServiceID = ""
	s.confirmTimer = nil
	s.resetLocked(models.ScreenDashboard)
	s.startStatusSimulationLocked(booking)
	s.mu.Unlock()
	s.notifyChange()
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
