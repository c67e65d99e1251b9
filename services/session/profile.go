package session

import (
	"context"

	"trustmate/models"

	"go.uber.org/zap"
)

// SaveTechnicianProfile applies the edit-profile form to the loaded
// technician and persists it, then pops back to the profile view. Requires a
// technician profile to be loaded.
func (s *Session) SaveTechnicianProfile(ctx context.Context, edit models.TechnicianProfileEdit) {
	s.mu.Lock()
	if s.technician == nil {
		s.mu.Unlock()
		return
	}
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	updated := *s.technician
	updated.Name = edit.Name
	updated.Role = edit.Role
	updated.Experience = edit.Experience
	updated.About = edit.About
	s.mu.Unlock()
	s.notifyChange()

	err := s.deps.Technicians.Update(ctx, &updated)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.logger().Error("failed to save technician profile", zap.Error(err))
		s.bannerError = genericErrorBanner
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.technician = &updated
	s.popLocked()
	s.mu.Unlock()
	s.notifyChange()
}

// Technician returns a copy of the loaded technician profile, or nil.
func (s *Session) Technician() *models.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.technician == nil {
		return nil
	}
	t := *s.technician
	return &t
}
