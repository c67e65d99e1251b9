package session

import "trustmate/models"

// Snapshot returns the full read-only view of the session.
func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		SessionID:        s.id,
		Screen:           s.currentLocked(),
		Direction:        s.direction,
		Loading:          s.loading,
		Error:            s.bannerError,
		Wizard:           models.WizardSnapshot{Active: s.wizardActive, Step: s.wizardStep, Complete: s.bookingComplete},
		Prefs:            s.prefs,
		SelectedPayment:  s.selectedPaymentID,
		SelectedService:  s.selectedServiceID,
		TrackingBooking:  s.trackingBookingID,
		TrackingProgress: s.trackingProgress,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if len(s.fieldErrors) > 0 {
		errs := make(map[string]string, len(s.fieldErrors))
		for k, v := range s.fieldErrors {
			errs[k] = v
		}
		snap.FieldErrors = errs
	}
	if s.draft != nil {
		d := *s.draft
		snap.Wizard.Draft = &d
	}
	if s.technician != nil {
		t := *s.technician
		t.Reviews = append([]models.Review(nil), s.technician.Reviews...)
		t.Portfolio = append([]string(nil), s.technician.Portfolio...)
		snap.Technician = &t
	}
	snap.Bookings = append([]models.Booking(nil), s.bookings...)
	snap.Notifications = append([]models.Notification(nil), s.notifications...)
	snap.PaymentMethods = append([]models.PaymentMethod(nil), s.paymentMethods...)
	return snap
}
