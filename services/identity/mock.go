package identity

import (
	"context"
	"strings"
	"sync"

	"trustmate/models"

	"github.com/google/uuid"
)

// SentinelOTP is the fixed OTP the mock accepts. Development stub only; the
// mongo-backed service generates real OTPs with a TTL.
const SentinelOTP = "1234"

// MockIdentityService is a deterministic in-memory IdentityService. Accounts
// registered during the process lifetime can sign back in; any other
// email/password pair is accepted as a demo user so the client can be
// exercised without a backend.
type MockIdentityService struct {
	mu       sync.Mutex
	accounts map[string]models.UserRecord // keyed by email
}

func NewMockIdentityService() *MockIdentityService {
	return &MockIdentityService{accounts: make(map[string]models.UserRecord)}
}

func (s *MockIdentityService) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.accounts[strings.ToLower(email)]; ok {
		if rec.PasswordHash != password {
			return models.AuthResult{Success: false, Message: "Invalid email or password."}, nil
		}
		u := rec.User
		return models.AuthResult{Success: true, User: &u}, nil
	}

	// Unknown account: resolve to a demo customer profile.
	u := models.User{
		ID:      uuid.New().String(),
		Name:    "User",
		Mobile:  "",
		Role:    models.RoleCustomer,
		Email:   email,
		Address: "",
	}
	return models.AuthResult{Success: true, User: &u}, nil
}

func (s *MockIdentityService) Register(ctx context.Context, input models.RegistrationInput) (models.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(input.Email)
	if _, ok := s.accounts[key]; ok {
		return models.AuthResult{Success: false, Message: "An account with this email already exists."}, nil
	}

	u := models.User{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Mobile:  input.Mobile,
		Role:    models.RoleCustomer,
		Email:   input.Email,
		Address: input.Address,
	}
	s.accounts[key] = models.UserRecord{User: u, PasswordHash: input.Password}
	return models.AuthResult{Success: true, User: &u}, nil
}

func (s *MockIdentityService) SendOtp(ctx context.Context, mobile string) (models.AuthResult, error) {
	if len(mobile) < 10 {
		return models.AuthResult{Success: false, Message: "Invalid mobile number."}, nil
	}
	return models.AuthResult{Success: true, Message: "OTP sent successfully (Simulated)."}, nil
}

func (s *MockIdentityService) ResetPassword(ctx context.Context, mobile, otp, newPassword string) (models.AuthResult, error) {
	if otp != SentinelOTP {
		return models.AuthResult{Success: false, Message: "Invalid OTP."}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, rec := range s.accounts {
		if rec.Mobile == mobile {
			updated := rec
			updated.PasswordHash = newPassword
			s.accounts[key] = updated
			break
		}
	}
	return models.AuthResult{Success: true, Message: "Password updated successfully (Simulated)."}, nil
}

func (s *MockIdentityService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (models.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, rec := range s.accounts {
		if rec.ID == userID {
			if rec.PasswordHash != currentPassword {
				return models.AuthResult{Success: false, Message: "Current password is incorrect."}, nil
			}
			updated := rec
			updated.PasswordHash = newPassword
			s.accounts[key] = updated
			return models.AuthResult{Success: true}, nil
		}
	}
	return models.AuthResult{Success: true}, nil
}
