package session

import (
	"context"

	"trustmate/models"

	"go.uber.org/zap"
)

// RefreshBookings reloads the signed-in user's bookings from the repository.
// Failures are logged and leave the cached list untouched.
func (s *Session) RefreshBookings(ctx context.Context) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	userID := s.user.ID
	s.mu.Unlock()

	bookings, err := s.deps.Bookings.ListByUser(ctx, userID)
	if err != nil {
		s.logger().Error("failed to load bookings", zap.String("user", userID), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()
	s.notifyChange()
}

// Bookings returns a copy of the cached booking list, newest first.
func (s *Session) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// BookingsByTab filters the cached list the way the my-bookings tabs do:
// "upcoming" keeps Upcoming bookings, "past" keeps Completed and Cancelled.
// Any other tab returns the full list.
func (s *Session) BookingsByTab(tab string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		switch tab {
		case "upcoming":
			if b.Status == models.StatusUpcoming {
				out = append(out, b)
			}
		case "past":
			if b.Status == models.StatusCompleted || b.Status == models.StatusCancelled {
				out = append(out, b)
			}
		default:
			out = append(out, b)
		}
	}
	return out
}

// RequestCancelBooking opens the cancel confirmation for a booking. Nothing
// changes until ConfirmCancelBooking.
func (s *Session) RequestCancelBooking(bookingID string) {
	s.mu.Lock()
	s.cancelBookingID = bookingID
	s.mu.Unlock()
	s.notifyChange()
}

// DismissCancelBooking closes the confirmation without cancelling.
func (s *Session) DismissCancelBooking() {
	s.mu.Lock()
	s.cancelBookingID = ""
	s.mu.Unlock()
	s.notifyChange()
}

// ConfirmCancelBooking flips the pending booking to Cancelled (copy on
// write) and mirrors the transition to the repository best-effort.
func (s *Session) ConfirmCancelBooking(ctx context.Context) {
	s.mu.Lock()
	bookingID := s.cancelBookingID
	if bookingID == "" {
		s.mu.Unlock()
		return
	}
	updated := make([]models.Booking, len(s.bookings))
	copy(updated, s.bookings)
	for i := range updated {
		if updated[i].ID == bookingID {
			updated[i].Status = models.StatusCancelled
		}
	}
	s.bookings = updated
	s.cancelBookingID = ""
	s.mu.Unlock()
	s.notifyChange()

	if err := s.deps.Bookings.UpdateStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		s.logger().Warn("failed to persist cancelled status", zap.String("booking", bookingID), zap.Error(err))
	}
}

// ViewTechnician loads the technician profile behind a service and pushes the
// profile screen. A load failure surfaces as the generic banner.
func (s *Session) ViewTechnician(ctx context.Context, technicianID string) {
	tech, err := s.deps.Technicians.GetByID(ctx, technicianID)

	s.mu.Lock()
	if err != nil {
		s.logger().Error("failed to load technician", zap.String("technician", technicianID), zap.Error(err))
		s.bannerError = genericErrorBanner
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.technician = tech
	s.pushLocked(models.ScreenTechnicianProfile)
	s.mu.Unlock()
	s.notifyChange()
}
