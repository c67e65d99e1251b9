package identity

import (
	"context"
	"testing"

	"trustmate/models"
)

func register(t *testing.T, svc *MockIdentityService) models.User {
	t.Helper()
	res, err := svc.Register(context.Background(), models.RegistrationInput{
		Name:     "Jane Doe",
		Mobile:   "5551234567",
		Email:    "jane@example.com",
		Password: "secret123",
		Address:  "123 Main St",
	})
	if err != nil || !res.Success {
		t.Fatalf("Register = %+v, %v", res, err)
	}
	return *res.User
}

func TestMockLoginKnownAccount(t *testing.T) {
	svc := NewMockIdentityService()
	user := register(t, svc)

	res, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	if err != nil || !res.Success {
		t.Fatalf("Login = %+v, %v", res, err)
	}
	if res.User.ID != user.ID {
		t.Fatalf("login resolved a different user: %s vs %s", res.User.ID, user.ID)
	}

	res, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Success || res.Message != "Invalid email or password." {
		t.Fatalf("wrong password result = %+v", res)
	}
}

func TestMockLoginUnknownResolvesDemoUser(t *testing.T) {
	svc := NewMockIdentityService()
	res, err := svc.Login(context.Background(), "anyone@example.com", "whatever")
	if err != nil || !res.Success || res.User == nil {
		t.Fatalf("Login = %+v, %v", res, err)
	}
	if res.User.Role != models.RoleCustomer {
		t.Fatalf("demo user role = %s", res.User.Role)
	}
}

func TestMockRegisterRejectsDuplicates(t *testing.T) {
	svc := NewMockIdentityService()
	register(t, svc)

	res, err := svc.Register(context.Background(), models.RegistrationInput{Email: "JANE@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Success {
		t.Fatal("duplicate email accepted")
	}
}

func TestMockResetPasswordSentinel(t *testing.T) {
	svc := NewMockIdentityService()
	register(t, svc)

	res, err := svc.ResetPassword(context.Background(), "5551234567", "9999", "newpass1")
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if res.Success {
		t.Fatal("wrong OTP accepted")
	}

	res, err = svc.ResetPassword(context.Background(), "5551234567", SentinelOTP, "newpass1")
	if err != nil || !res.Success {
		t.Fatalf("sentinel reset = %+v, %v", res, err)
	}

	login, err := svc.Login(context.Background(), "jane@example.com", "newpass1")
	if err != nil || !login.Success {
		t.Fatalf("login with new password = %+v, %v", login, err)
	}
}

func TestMockChangePassword(t *testing.T) {
	svc := NewMockIdentityService()
	user := register(t, svc)

	res, err := svc.ChangePassword(context.Background(), user.ID, "wrong", "newpass1")
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if res.Success {
		t.Fatal("wrong current password accepted")
	}

	res, err = svc.ChangePassword(context.Background(), user.ID, "secret123", "newpass1")
	if err != nil || !res.Success {
		t.Fatalf("ChangePassword = %+v, %v", res, err)
	}
}
