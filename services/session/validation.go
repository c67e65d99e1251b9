package session

import (
	"regexp"
	"strings"

	"trustmate/models"
)

// Validators return one message per field, accumulated across fields; an
// empty map means the form may be submitted. Messages match the client copy
// verbatim.

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	digitRe  = regexp.MustCompile(`\D`)
)

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

func digitsOnly(s string) string {
	return digitRe.ReplaceAllString(s, "")
}

// ValidateLogin checks the login form. The login screen validates
// sequentially: a missing email is reported before the password is looked at.
func ValidateLogin(email, password string) map[string]string {
	if strings.TrimSpace(email) == "" {
		return map[string]string{"email": "Email is required"}
	}
	if strings.TrimSpace(password) == "" {
		return map[string]string{"password": "Password is required"}
	}
	return map[string]string{}
}

// ValidateSignup checks the registration form.
func ValidateSignup(input models.RegistrationInput) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		errors["name"] = "Full Name is required"
	}
	if strings.TrimSpace(input.Mobile) == "" || len(input.Mobile) < 10 {
		errors["mobile"] = "Valid mobile number is required (min 10 digits)"
	}
	if input.Mobile != input.ConfirmMobile {
		errors["confirmMobile"] = "Mobile numbers do not match"
	}
	if strings.TrimSpace(input.Address) == "" {
		errors["address"] = "Address is required"
	}
	if input.Email == "" || !validEmail(input.Email) {
		errors["email"] = "Valid email is required"
	}
	if input.Password == "" || len(input.Password) < 6 {
		errors["password"] = "Password must be at least 6 characters"
	}
	return errors
}

// ValidateOtpRequest checks the forgot-password mobile field.
func ValidateOtpRequest(mobile string) map[string]string {
	if strings.TrimSpace(mobile) == "" || len(mobile) < 10 {
		return map[string]string{"mobile": "Valid mobile number is required"}
	}
	return map[string]string{}
}

// ValidatePasswordReset checks the OTP reset form.
func ValidatePasswordReset(otp, newPass, confirmPass string) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(otp) == "" {
		errors["otp"] = "OTP is required"
	}
	if strings.TrimSpace(newPass) == "" {
		errors["newPass"] = "New password is required"
	}
	if newPass != confirmPass {
		errors["confirmPass"] = "Passwords do not match"
	}
	return errors
}

// ValidateChangePassword checks the change-password form.
func ValidateChangePassword(currentPass, newPass, confirmPass string) map[string]string {
	errors := map[string]string{}
	if currentPass == "" {
		errors["currentPass"] = "Current password is required"
	}
	if newPass == "" {
		errors["newPass"] = "New password is required"
	}
	if newPass != confirmPass {
		errors["confirmPass"] = "Passwords do not match"
	}
	return errors
}

// ValidateCard checks the add-card form. The card number is stripped of
// non-digits before the length check.
func ValidateCard(input models.CardInput) map[string]string {
	errors := map[string]string{}
	if len(digitsOnly(input.Number)) != 16 {
		errors["number"] = "Card number must be 16 digits"
	}
	if !expiryRe.MatchString(input.Expiry) {
		errors["expiry"] = "Format must be MM/YY"
	} else {
		month := int(input.Expiry[0]-'0')*10 + int(input.Expiry[1]-'0')
		if month < 1 || month > 12 {
			errors["expiry"] = "Invalid month"
		}
	}
	if len(input.CVC) != 3 || digitsOnly(input.CVC) != input.CVC {
		errors["cvc"] = "CVC must be 3 digits"
	}
	if strings.TrimSpace(input.Name) == "" {
		errors["name"] = "Cardholder name is required"
	}
	return errors
}

// ValidateBankAccount checks the add-bank-account form.
func ValidateBankAccount(input models.BankAccountInput) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(input.BankName) == "" {
		errors["bankName"] = "Bank Name is required"
	}
	if strings.TrimSpace(input.AccountHolder) == "" {
		errors["accountHolder"] = "Account Holder Name is required"
	}
	if len(digitsOnly(input.RoutingNumber)) != 9 {
		errors["routingNumber"] = "Routing number must be 9 digits"
	}
	if len(digitsOnly(input.AccountNumber)) < 10 {
		errors["accountNumber"] = "Account number must be at least 10 digits"
	}
	return errors
}
