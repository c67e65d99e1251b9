package session

import (
	"context"
	"fmt"

	"trustmate/models"

	"go.uber.org/zap"
)

// startStatusSimulationLocked schedules the three one-shot status emissions
// for a freshly committed booking, anchored at the moment the confirmation
// view closes. The emissions are independent and lossy: nothing is persisted
// or replayed if the session ends before an offset elapses.
func (s *Session) startStatusSimulationLocked(b models.Booking) {
	serviceName := "Service"
	if svc, ok := models.ServiceByID(b.ServiceID); ok {
		serviceName = svc.Label
	}

	assigned := s.deps.NewTimer(assignedDelay, func() {
		s.emitStatusNotification(
			"Technician Assigned",
			fmt.Sprintf("%s has been assigned to your %s request. He will arrive at %s.", b.TechnicianName, serviceName, b.Time),
		)
	})
	started := s.deps.NewTimer(startedDelay, func() {
		s.emitStatusNotification(
			"Job Started",
			fmt.Sprintf("Technician has started working on your %s at %s.", serviceName, b.Address),
		)
	})
	completed := s.deps.NewTimer(completedDelay, func() {
		s.emitStatusNotification(
			"Job Completed",
			fmt.Sprintf("Your %s service has been completed successfully. Total amount: $%s. Tap to rate!", serviceName, formatPrice(b.Price)),
		)
		s.completeBooking(b.ID)
	})

	s.simTimers[b.ID] = append(s.simTimers[b.ID], assigned, started, completed)
}

// emitStatusNotification prepends a status notification to the feed.
func (s *Session) emitStatusNotification(title, message string) {
	s.mu.Lock()
	s.addNotificationLocked(title, message, models.NotifStatus)
	s.mu.Unlock()
	s.notifyChange()
}

// completeBooking flips the booking to Completed in the local list (copy on
// write) and mirrors the transition to the repository best-effort.
func (s *Session) completeBooking(bookingID string) {
	s.mu.Lock()
	updated := make([]models.Booking, len(s.bookings))
	copy(updated, s.bookings)
	for i := range updated {
		if updated[i].ID == bookingID {
			updated[i].Status = models.StatusCompleted
		}
	}
	s.bookings = updated
	delete(s.simTimers, bookingID)
	s.mu.Unlock()
	s.notifyChange()

	if err := s.deps.Bookings.UpdateStatus(context.Background(), bookingID, models.StatusCompleted); err != nil {
		s.logger().Warn("failed to persist completed status", zap.String("booking", bookingID), zap.Error(err))
	}
}
