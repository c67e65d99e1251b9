package models

import "time"

type UserRole string

const (
	RoleCustomer   UserRole = "CUSTOMER"
	RoleTechnician UserRole = "TECHNICIAN"
	RoleAdmin      UserRole = "ADMIN"
)

// User is the profile visible to a signed-in session.
type User struct {
	ID      string   `bson:"id" json:"id"`
	Name    string   `bson:"name" json:"name"`
	Mobile  string   `bson:"mobile" json:"mobile"`
	Role    UserRole `bson:"role" json:"role"`
	Email   string   `bson:"email,omitempty" json:"email,omitempty"`
	Address string   `bson:"address,omitempty" json:"address,omitempty"`
}

// UserRecord is the stored account record used by the identity service.
// PasswordHash never leaves the identity layer.
type UserRecord struct {
	User         `bson:",inline"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// RegistrationInput carries the signup form fields to the identity service.
type RegistrationInput struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	ConfirmMobile string `json:"confirmMobile"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Address       string `json:"address"`
	CountryCode   string `json:"countryCode"`
}

// AuthResult is the identity collaborator's reply shape: failures that are
// part of the protocol (bad credentials, bad OTP) come back as Success=false
// with a message rather than as an error.
type AuthResult struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}
