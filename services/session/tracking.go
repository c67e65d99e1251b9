package session

import "trustmate/models"

// OpenTracking pushes the tracking screen for a booking. The progress ticker
// is started by the screen-change hook, so entering and leaving by any
// navigation path behaves the same.
func (s *Session) OpenTracking(bookingID string) {
	s.mu.Lock()
	s.trackingBookingID = bookingID
	s.pushLocked(models.ScreenTracking)
	s.mu.Unlock()
	s.notifyChange()
}

// TrackingProgress returns the simulated arrival percentage.
func (s *Session) TrackingProgress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trackingProgress
}

// startTrackingTimerLocked begins the 0→100 progress simulation: one tick
// every interval, +0.2 per tick, clamped at 100. The generation counter makes
// a tick scheduled before a stop a no-op, so leaving the screen resets the
// simulation instantly even if a callback was already in flight.
func (s *Session) startTrackingTimerLocked() {
	s.trackingGen++
	s.trackingTicks = 0
	s.trackingProgress = 0
	s.scheduleTrackingTickLocked(s.trackingGen)
}

func (s *Session) scheduleTrackingTickLocked(gen int) {
	s.trackingTimer = s.deps.NewTimer(trackingTickInterval, func() { s.trackingTick(gen) })
}

func (s *Session) trackingTick(gen int) {
	s.mu.Lock()
	if gen != s.trackingGen {
		s.mu.Unlock()
		return
	}
	// Progress is derived from the tick count rather than accumulated, so the
	// cap is reached after exactly 500 ticks.
	s.trackingTicks++
	progress := float64(s.trackingTicks) * 0.2
	if progress >= 100 {
		progress = 100
	} else {
		s.scheduleTrackingTickLocked(gen)
	}
	s.trackingProgress = progress
	s.mu.Unlock()
	s.notifyChange()
}

// stopTrackingTimerLocked cancels the ticker and invalidates in-flight ticks.
func (s *Session) stopTrackingTimerLocked() {
	s.trackingGen++
	if s.trackingTimer != nil {
		s.trackingTimer.Stop()
		s.trackingTimer = nil
	}
}
