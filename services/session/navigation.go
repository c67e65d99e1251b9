package session

import "trustmate/models"

// Push appends a screen to the history and marks the transition forward.
// Pushing the same screen twice is legal and produces two entries.
func (s *Session) Push(screen models.Screen) {
	s.mu.Lock()
	s.pushLocked(screen)
	s.mu.Unlock()
	s.notifyChange()
}

// Pop removes the top screen. Popping the root screen is a no-op: the stack
// never goes below one entry and the direction is left untouched.
func (s *Session) Pop() {
	s.mu.Lock()
	changed := s.popLocked()
	s.mu.Unlock()
	if changed {
		s.notifyChange()
	}
}

// Reset replaces the whole history with a single screen. Used for terminal
// transitions (login, logout, home shortcuts) so back-navigation cannot reach
// stale screens.
func (s *Session) Reset(screen models.Screen) {
	s.mu.Lock()
	s.resetLocked(screen)
	s.mu.Unlock()
	s.notifyChange()
}

// Current returns the active screen. Total: the stack is never empty.
func (s *Session) Current() models.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

// Direction returns the direction tag of the most recent mutation.
func (s *Session) Direction() models.TransitionDirection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// Depth returns the history length.
func (s *Session) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// NavigateFromMenu applies the sidebar semantics: navigating to the current
// screen is a no-op, the dashboard resets the stack, anything else pushes.
func (s *Session) NavigateFromMenu(screen models.Screen) {
	s.mu.Lock()
	if s.currentLocked() == screen {
		s.mu.Unlock()
		return
	}
	if screen == models.ScreenDashboard {
		s.resetLocked(screen)
	} else {
		s.pushLocked(screen)
	}
	s.mu.Unlock()
	s.notifyChange()
}

func (s *Session) currentLocked() models.Screen {
	return s.history[len(s.history)-1]
}

func (s *Session) pushLocked(screen models.Screen) {
	prev := s.currentLocked()
	s.direction = models.DirectionForward
	s.history = append(s.history, screen)
	s.screenChangedLocked(prev)
}

func (s *Session) popLocked() bool {
	if len(s.history) <= 1 {
		return false
	}
	prev := s.currentLocked()
	s.direction = models.DirectionBackward
	s.history = s.history[:len(s.history)-1]
	s.screenChangedLocked(prev)
	return true
}

func (s *Session) resetLocked(screen models.Screen) {
	prev := s.currentLocked()
	s.direction = models.DirectionForward
	s.history = []models.Screen{screen}
	s.screenChangedLocked(prev)
}

// screenChangedLocked runs the side effects of every screen change: stale
// form errors are dropped, and the tracking ticker starts or stops with the
// tracking screen.
func (s *Session) screenChangedLocked(prev models.Screen) {
	s.bannerError = ""
	s.fieldErrors = nil

	cur := s.currentLocked()
	if cur == prev {
		return
	}
	if prev == models.ScreenTracking {
		s.stopTrackingTimerLocked()
		s.trackingProgress = 0
	}
	if cur == models.ScreenTracking {
		s.startTrackingTimerLocked()
	}
}
