package handlers

import (
	"net/http"

	"trustmate/models"

	"github.com/gin-gonic/gin"
)

// LoginHandler runs the login flow. Validation failures and rejected
// credentials surface inside the snapshot, not as HTTP errors.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.Login(c.Request.Context(), input.Email, input.Password)
	respondSnapshot(c, sess)
}

// SignupHandler runs the registration flow.
func (h *SessionHandler) SignupHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.Signup(c.Request.Context(), input)
	respondSnapshot(c, sess)
}

// RequestOtpHandler triggers the forgot-password OTP send.
func (h *SessionHandler) RequestOtpHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		Mobile string `json:"mobile"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.RequestOtp(c.Request.Context(), input.Mobile)
	respondSnapshot(c, sess)
}

// ResetPasswordHandler completes the OTP reset flow.
func (h *SessionHandler) ResetPasswordHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		Otp             string `json:"otp"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.ResetPassword(c.Request.Context(), input.Otp, input.NewPassword, input.ConfirmPassword)
	respondSnapshot(c, sess)
}

// ChangePasswordHandler changes the signed-in user's password.
func (h *SessionHandler) ChangePasswordHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.ChangePassword(c.Request.Context(), input.CurrentPassword, input.NewPassword, input.ConfirmPassword)
	respondSnapshot(c, sess)
}

// ChooseRoleHandler records the customer/technician choice made after signup.
func (h *SessionHandler) ChooseRoleHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		Technician bool `json:"technician"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.ChooseRole(input.Technician)
	respondSnapshot(c, sess)
}

// TechnicianOnboardingHandler accepts the onboarding form for new
// technicians.
func (h *SessionHandler) TechnicianOnboardingHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input models.TechnicianOnboarding
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.SubmitTechnicianOnboarding(input)
	respondSnapshot(c, sess)
}
