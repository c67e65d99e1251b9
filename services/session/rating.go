package session

import (
	"context"

	"trustmate/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OpenRating pushes the rating screen for a completed booking.
func (s *Session) OpenRating(bookingID string) {
	s.mu.Lock()
	s.ratingBookingID = bookingID
	s.pushLocked(models.ScreenRating)
	s.mu.Unlock()
	s.notifyChange()
}

// SubmitRating records a 1-5 star rating with an optional comment. A zero
// rating is rejected before any state changes. The booking record gets the
// rating attached (copy on write) and the technician profile gains the
// review: prepended to the list, average recomputed to one decimal, review
// count incremented by one.
func (s *Session) SubmitRating(ctx context.Context, rating int, comment string) {
	if rating < 1 || rating > 5 {
		return
	}
	s.mu.Lock()
	bookingID := s.ratingBookingID
	if bookingID == "" {
		s.mu.Unlock()
		return
	}
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	userName := "Anonymous"
	if s.user != nil && s.user.Name != "" {
		userName = s.user.Name
	}
	s.mu.Unlock()
	s.notifyChange()

	if err := s.deps.Bookings.SubmitReview(ctx, bookingID, rating, comment); err != nil {
		s.logger().Warn("failed to persist booking review", zap.String("booking", bookingID), zap.Error(err))
	}

	review := models.Review{
		ID:       uuid.New().String(),
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
		Date:     "Just now",
	}
	tech, err := s.deps.Technicians.AddReview(ctx, models.MockTechnicianID, review)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.logger().Error("failed to add technician review", zap.Error(err))
	} else {
		s.technician = tech
	}
	updated := make([]models.Booking, len(s.bookings))
	copy(updated, s.bookings)
	for i := range updated {
		if updated[i].ID == bookingID {
			updated[i].Rating = rating
			updated[i].Review = comment
		}
	}
	s.bookings = updated
	s.ratingBookingID = ""
	s.popLocked()
	s.mu.Unlock()
	s.notifyChange()
}
