package identity

import (
	"context"

	"trustmate/models"
)

// IdentityService is the authentication collaborator. Expected failures (bad
// credentials, unknown account, bad OTP) are reported inside AuthResult with
// Success=false; errors are reserved for transport/infrastructure faults.
type IdentityService interface {
	Login(ctx context.Context, email, password string) (models.AuthResult, error)
	Register(ctx context.Context, input models.RegistrationInput) (models.AuthResult, error)
	SendOtp(ctx context.Context, mobile string) (models.AuthResult, error)
	ResetPassword(ctx context.Context, mobile, otp, newPassword string) (models.AuthResult, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (models.AuthResult, error)
}
