package session

import (
	"context"

	"trustmate/models"

	"go.uber.org/zap"
)

// genericErrorBanner is shown for collaborator faults that are not part of
// the auth protocol. It never exposes internals.
const genericErrorBanner = "An unexpected error occurred."

// Login validates the form, authenticates against the identity collaborator
// and, on success, resets the stack to the dashboard with a fresh booking
// list. Failures surface as field errors or a banner; nothing propagates.
func (s *Session) Login(ctx context.Context, email, password string) {
	s.mu.Lock()
	s.bannerError = ""
	if errs := ValidateLogin(email, password); len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.fieldErrors = nil
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notifyChange()

	res, err := s.deps.Identity.Login(ctx, email, password)

	s.mu.Lock()
	s.loading = false
	switch {
	case err != nil:
		s.logger().Error("login failed", zap.Error(err))
		s.bannerError = genericErrorBanner
	case res.Success && res.User != nil:
		u := *res.User
		s.user = &u
		s.resetLocked(models.ScreenDashboard)
	default:
		s.bannerError = res.Message
		if s.bannerError == "" {
			s.bannerError = "Login failed"
		}
	}
	signedIn := s.user != nil
	s.mu.Unlock()

	if signedIn {
		s.RefreshBookings(ctx)
	}
	s.notifyChange()
}

// RequestOtp validates the mobile number and asks the identity collaborator
// to send an OTP; on success the reset-password screen is pushed and the
// mobile number is kept for the reset call.
func (s *Session) RequestOtp(ctx context.Context, mobile string) {
	s.mu.Lock()
	s.bannerError = ""
	if errs := ValidateOtpRequest(mobile); len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.fieldErrors = nil
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notifyChange()

	res, err := s.deps.Identity.SendOtp(ctx, mobile)

	s.mu.Lock()
	s.loading = false
	switch {
	case err != nil:
		s.logger().Error("otp request failed", zap.Error(err))
		s.bannerError = "Network error occurred"
	case res.Success:
		s.forgotMobile = mobile
		s.pushLocked(models.ScreenResetPassword)
	default:
		s.bannerError = res.Message
		if s.bannerError == "" {
			s.bannerError = "Failed to send OTP"
		}
	}
	s.mu.Unlock()
	s.notifyChange()
}

// ResetPassword completes the OTP reset flow against the mobile number the
// OTP was requested for. On success the stack resets to the login screen.
func (s *Session) ResetPassword(ctx context.Context, otp, newPass, confirmPass string) {
	s.mu.Lock()
	s.bannerError = ""
	if errs := ValidatePasswordReset(otp, newPass, confirmPass); len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.fieldErrors = nil
	mobile := s.forgotMobile
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notifyChange()

	res, err := s.deps.Identity.ResetPassword(ctx, mobile, otp, newPass)

	s.mu.Lock()
	s.loading = false
	switch {
	case err != nil:
		s.logger().Error("password reset failed", zap.Error(err))
		s.bannerError = genericErrorBanner
	case res.Success:
		s.forgotMobile = ""
		s.resetLocked(models.ScreenLogin)
	default:
		s.bannerError = res.Message
		if s.bannerError == "" {
			s.bannerError = "Reset failed"
		}
	}
	s.mu.Unlock()
	s.notifyChange()
}

// Signup validates the registration form (all field errors surfaced at once)
// and registers the account. On success the stack resets to the role prompt
// so the back button cannot reach the auth forms.
func (s *Session) Signup(ctx context.Context, input models.RegistrationInput) {
	s.mu.Lock()
	s.bannerError = ""
	if errs := ValidateSignup(input); len(errs) > 0 {
		s.fieldErrors = errs
		s.bannerError = "Please fix the errors below."
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.fieldErrors = nil
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notifyChange()

	res, err := s.deps.Identity.Register(ctx, input)

	s.mu.Lock()
	s.loading = false
	switch {
	case err != nil:
		s.logger().Error("signup failed", zap.Error(err))
		s.bannerError = "Registration failed."
	case res.Success && res.User != nil:
		u := *res.User
		s.user = &u
		s.resetLocked(models.ScreenTechPrompt)
	default:
		s.bannerError = res.Message
		if s.bannerError == "" {
			s.bannerError = "Signup failed"
		}
	}
	signedIn := s.user != nil
	s.mu.Unlock()

	if signedIn {
		s.RefreshBookings(ctx)
	}
	s.notifyChange()
}

// ChooseRole records the role picked on the prompt after signup. Technicians
// continue to onboarding; customers land on the dashboard.
func (s *Session) ChooseRole(isTechnician bool) {
	s.mu.Lock()
	if s.user != nil {
		u := *s.user
		if isTechnician {
			u.Role = models.RoleTechnician
		} else {
			u.Role = models.RoleCustomer
		}
		s.user = &u
	}
	if isTechnician {
		s.pushLocked(models.ScreenTechnicianOnboarding)
	} else {
		s.resetLocked(models.ScreenDashboard)
	}
	s.mu.Unlock()
	s.notifyChange()
}

// SubmitTechnicianOnboarding accepts the onboarding form and lands on the
// dashboard. Persisting the technician profile is a backend concern the demo
// backend does not implement.
func (s *Session) SubmitTechnicianOnboarding(form models.TechnicianOnboarding) {
	s.mu.Lock()
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	s.loading = false
	s.resetLocked(models.ScreenDashboard)
	s.mu.Unlock()
	s.notifyChange()
}

// ChangePassword validates and applies a password change for the signed-in
// user, then pops back to settings.
func (s *Session) ChangePassword(ctx context.Context, currentPass, newPass, confirmPass string) {
	s.mu.Lock()
	s.bannerError = ""
	if errs := ValidateChangePassword(currentPass, newPass, confirmPass); len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.fieldErrors = nil
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	userID := s.user.ID
	if !s.beginCallLocked() {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notifyChange()

	res, err := s.deps.Identity.ChangePassword(ctx, userID, currentPass, newPass)

	s.mu.Lock()
	s.loading = false
	switch {
	case err != nil:
		s.logger().Error("password change failed", zap.Error(err))
		s.bannerError = genericErrorBanner
	case res.Success:
		s.popLocked()
	default:
		s.bannerError = res.Message
	}
	s.mu.Unlock()
	s.notifyChange()
}
