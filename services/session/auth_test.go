package session

import (
	"context"
	"testing"

	"trustmate/models"
)

func TestLoginLoadsBookings(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	snap := env.sess.Snapshot()
	if len(snap.Bookings) != 3 {
		t.Fatalf("bookings after login = %d, want 3 seeded", len(snap.Bookings))
	}
	if snap.Bookings[0].ID != "101" {
		t.Fatalf("booking head = %s, want 101", snap.Bookings[0].ID)
	}
	if got := env.sess.Depth(); got != 1 {
		t.Fatalf("stack depth after login = %d, want 1", got)
	}
}

func TestLoginValidationStopsBeforeIdentity(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	sess.Login(context.Background(), "not-an-issue", "")
	snap := sess.Snapshot()
	if got := snap.FieldErrors["password"]; got != "Password is required" {
		t.Fatalf("password error = %q", got)
	}
	if sess.User() != nil {
		t.Fatal("invalid form still signed the user in")
	}
	if snap.Screen != models.ScreenLogin {
		t.Fatalf("screen = %s, want login", snap.Screen)
	}
}

func TestLoginRejectedCredentialsShowBanner(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	// Register an account, then present the wrong password for it.
	sess.Push(models.ScreenSignup)
	sess.Signup(context.Background(), models.RegistrationInput{
		Name:          "Jane Doe",
		Mobile:        "5551234567",
		ConfirmMobile: "5551234567",
		Email:         "jane@example.com",
		Password:      "secret123",
		Address:       "123 Main St",
	})
	sess.Logout()

	sess.Login(context.Background(), "jane@example.com", "wrongpass")
	snap := sess.Snapshot()
	if snap.Error != "Invalid email or password." {
		t.Fatalf("banner = %q", snap.Error)
	}
	if sess.User() != nil {
		t.Fatal("rejected credentials signed the user in")
	}
}

func TestSignupValidationBanner(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	sess.Push(models.ScreenSignup)
	sess.Signup(context.Background(), models.RegistrationInput{})
	snap := sess.Snapshot()
	if snap.Error != "Please fix the errors below." {
		t.Fatalf("banner = %q", snap.Error)
	}
	if len(snap.FieldErrors) == 0 {
		t.Fatal("no field errors for empty signup")
	}
	if snap.Screen != models.ScreenSignup {
		t.Fatalf("screen = %s, want signup", snap.Screen)
	}
}

func TestSignupSuccessLandsOnRolePrompt(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	sess.Push(models.ScreenSignup)
	sess.Signup(context.Background(), models.RegistrationInput{
		Name:          "Jane Doe",
		Mobile:        "5551234567",
		ConfirmMobile: "5551234567",
		Email:         "jane@example.com",
		Password:      "secret123",
		Address:       "123 Main St",
	})

	snap := sess.Snapshot()
	if snap.Screen != models.ScreenTechPrompt {
		t.Fatalf("screen = %s, want %s", snap.Screen, models.ScreenTechPrompt)
	}
	if got := sess.Depth(); got != 1 {
		t.Fatalf("depth after signup = %d, want 1 (auth forms unreachable)", got)
	}
	if sess.User() == nil || sess.User().Address != "123 Main St" {
		t.Fatalf("user after signup = %+v", sess.User())
	}
}

func TestChooseRole(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess
	sess.Push(models.ScreenSignup)
	sess.Signup(context.Background(), models.RegistrationInput{
		Name:          "Jane Doe",
		Mobile:        "5551234567",
		ConfirmMobile: "5551234567",
		Email:         "jane@example.com",
		Password:      "secret123",
		Address:       "123 Main St",
	})

	sess.ChooseRole(true)
	snap := sess.Snapshot()
	if snap.Screen != models.ScreenTechnicianOnboarding {
		t.Fatalf("technician role screen = %s", snap.Screen)
	}
	if sess.User().Role != models.RoleTechnician {
		t.Fatalf("role = %s, want technician", sess.User().Role)
	}

	sess.SubmitTechnicianOnboarding(models.TechnicianOnboarding{Specialization: "Plumbing"})
	if got := sess.Current(); got != models.ScreenDashboard {
		t.Fatalf("screen after onboarding = %s", got)
	}
}

func TestOtpResetFlow(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	sess.Push(models.ScreenForgotPassword)
	sess.RequestOtp(context.Background(), "5551234567")
	if got := sess.Current(); got != models.ScreenResetPassword {
		t.Fatalf("screen after OTP request = %s, want %s", got, models.ScreenResetPassword)
	}

	// Wrong OTP keeps the user on the reset screen with the service message.
	sess.ResetPassword(context.Background(), "9999", "newpass1", "newpass1")
	snap := sess.Snapshot()
	if snap.Error != "Invalid OTP." {
		t.Fatalf("banner = %q", snap.Error)
	}
	if snap.Screen != models.ScreenResetPassword {
		t.Fatalf("screen = %s", snap.Screen)
	}

	// The sentinel OTP completes the flow back at login.
	sess.ResetPassword(context.Background(), "1234", "newpass1", "newpass1")
	snap = sess.Snapshot()
	if snap.Screen != models.ScreenLogin {
		t.Fatalf("screen after reset = %s, want login", snap.Screen)
	}
	if got := sess.Depth(); got != 1 {
		t.Fatalf("depth after reset = %d, want 1", got)
	}
}

func TestOtpRequestValidatesMobile(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	sess.Push(models.ScreenForgotPassword)
	sess.RequestOtp(context.Background(), "555")
	snap := sess.Snapshot()
	if got := snap.FieldErrors["mobile"]; got != "Valid mobile number is required" {
		t.Fatalf("mobile error = %q", got)
	}
	if snap.Screen != models.ScreenForgotPassword {
		t.Fatalf("invalid mobile advanced to %s", snap.Screen)
	}
}

func TestLogoutResetsSession(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.Push(models.ScreenSettings)
	sess.Logout()

	snap := sess.Snapshot()
	if snap.User != nil {
		t.Fatal("user survived logout")
	}
	if snap.Screen != models.ScreenLogin || sess.Depth() != 1 {
		t.Fatalf("stack after logout = %s depth %d", snap.Screen, sess.Depth())
	}
	if len(snap.Bookings) != 0 {
		t.Fatalf("bookings survived logout: %d", len(snap.Bookings))
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess
	sess.Push(models.ScreenSignup)
	sess.Signup(context.Background(), models.RegistrationInput{
		Name:          "Jane Doe",
		Mobile:        "5551234567",
		ConfirmMobile: "5551234567",
		Email:         "jane@example.com",
		Password:      "secret123",
		Address:       "123 Main St",
	})
	sess.ChooseRole(false)

	sess.Push(models.ScreenSettings)
	sess.Push(models.ScreenChangePassword)
	sess.ChangePassword(context.Background(), "wrong", "newpass1", "newpass1")
	snap := sess.Snapshot()
	if snap.Error != "Current password is incorrect." {
		t.Fatalf("banner = %q", snap.Error)
	}
	if snap.Screen != models.ScreenChangePassword {
		t.Fatalf("screen = %s", snap.Screen)
	}

	sess.ChangePassword(context.Background(), "secret123", "newpass1", "newpass1")
	if got := sess.Current(); got != models.ScreenSettings {
		t.Fatalf("screen after change = %s, want settings", got)
	}
}
