package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trustmate/database"
	"trustmate/models"
	"trustmate/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultIdentityService is the production implementation backed by MongoDB
// for accounts and Redis for password-reset OTPs.
type DefaultIdentityService struct {
	Users *mongo.Collection
	OTP   *redis.Client
}

func NewDefaultIdentityService(otpClient *redis.Client) *DefaultIdentityService {
	return &DefaultIdentityService{
		Users: database.Collection("users"),
		OTP:   otpClient,
	}
}

func (s *DefaultIdentityService) getByEmail(ctx context.Context, email string) (*models.UserRecord, error) {
	var rec models.UserRecord
	err := s.Users.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &rec, nil
}

func (s *DefaultIdentityService) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	rec, err := s.getByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return models.AuthResult{}, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return models.AuthResult{Success: false, Message: "Invalid email or password."}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return models.AuthResult{Success: false, Message: "Invalid email or password."}, nil
	}

	u := rec.User
	return models.AuthResult{Success: true, User: &u}, nil
}

func (s *DefaultIdentityService) Register(ctx context.Context, input models.RegistrationInput) (models.AuthResult, error) {
	existing, err := s.getByEmail(ctx, input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return models.AuthResult{}, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return models.AuthResult{Success: false, Message: "An account with this email already exists."}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return models.AuthResult{}, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	rec := models.UserRecord{
		User: models.User{
			ID:      uuid.New().String(),
			Name:    input.Name,
			Mobile:  input.Mobile,
			Role:    models.RoleCustomer,
			Email:   strings.ToLower(input.Email),
			Address: input.Address,
		},
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.Users.InsertOne(ctx, rec); err != nil {
		utils.GetLogger().Error("Register: failed to insert user", zap.Error(err))
		return models.AuthResult{}, fmt.Errorf("registration failed, please try again")
	}

	u := rec.User
	return models.AuthResult{Success: true, User: &u}, nil
}

func (s *DefaultIdentityService) SendOtp(ctx context.Context, mobile string) (models.AuthResult, error) {
	if len(mobile) < 10 {
		return models.AuthResult{Success: false, Message: "Invalid mobile number."}, nil
	}

	otp, err := generateSecureOTP(4)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("failed to generate OTP: %w", err)
	}

	// Only the hash is cached; the plaintext OTP exists in the SMS alone.
	key := otpKey(mobile)
	if err := s.OTP.Set(ctx, key, utils.HashToken(otp), 5*time.Minute).Err(); err != nil {
		utils.GetLogger().Error("SendOtp: failed to cache OTP", zap.Error(err))
		return models.AuthResult{}, fmt.Errorf("failed to send OTP")
	}

	// SMS delivery is out of scope; log the outgoing message instead.
	utils.GetLogger().Sugar().Infof("Sending SMS to %s: Your TrustMate OTP is %s. It expires in 5 minutes.", mobile, otp)
	return models.AuthResult{Success: true, Message: "OTP sent successfully."}, nil
}

func (s *DefaultIdentityService) ResetPassword(ctx context.Context, mobile, otp, newPassword string) (models.AuthResult, error) {
	stored, err := s.OTP.Get(ctx, otpKey(mobile)).Result()
	if err == redis.Nil {
		return models.AuthResult{Success: false, Message: "OTP not found or expired."}, nil
	}
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	if stored != utils.HashToken(otp) {
		return models.AuthResult{Success: false, Message: "Invalid OTP."}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("failed to process new password")
	}

	update := bson.M{"$set": bson.M{"password_hash": string(hash), "updated_at": time.Now()}}
	res, err := s.Users.UpdateOne(ctx, bson.M{"mobile": mobile}, update)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to update password", zap.Error(err))
		return models.AuthResult{}, fmt.Errorf("failed to update password")
	}
	if res.MatchedCount == 0 {
		return models.AuthResult{Success: false, Message: "No account found for this mobile number."}, nil
	}

	// Burn the OTP after a successful reset.
	if err := s.OTP.Del(ctx, otpKey(mobile)).Err(); err != nil {
		utils.GetLogger().Error("ResetPassword: failed to delete OTP", zap.Error(err))
	}
	return models.AuthResult{Success: true, Message: "Password updated successfully."}, nil
}

func (s *DefaultIdentityService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (models.AuthResult, error) {
	var rec models.UserRecord
	err := s.Users.FindOne(ctx, bson.M{"id": userID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return models.AuthResult{Success: false, Message: "Account not found."}, nil
	}
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(currentPassword)); err != nil {
		return models.AuthResult{Success: false, Message: "Current password is incorrect."}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("failed to process new password")
	}
	update := bson.M{"$set": bson.M{"password_hash": string(hash), "updated_at": time.Now()}}
	if _, err := s.Users.UpdateOne(ctx, bson.M{"id": userID}, update); err != nil {
		return models.AuthResult{}, fmt.Errorf("failed to update password")
	}
	return models.AuthResult{Success: true}, nil
}

func otpKey(mobile string) string {
	return fmt.Sprintf("otp:%s", mobile)
}
