package session

import (
	"fmt"

	"trustmate/models"

	"github.com/google/uuid"
)

// SelectPaymentMethod records the method used for checkout. Unknown ids are
// ignored so a stale client cannot select a deleted method.
func (s *Session) SelectPaymentMethod(id string) {
	s.mu.Lock()
	found := false
	for _, pm := range s.paymentMethods {
		if pm.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.selectedPaymentID = id
	if s.draft != nil {
		d := *s.draft
		d.PaymentID = id
		s.draft = &d
	}
	s.mu.Unlock()
	s.notifyChange()
}

// AddCard validates the card form, appends the new method and pops back to
// the payment-method list. Brand detection is mocked to visa.
func (s *Session) AddCard(input models.CardInput) {
	s.mu.Lock()
	s.bannerError = ""
	if errs := ValidateCard(input); len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.fieldErrors = nil
	number := digitsOnly(input.Number)
	last4 := number[len(number)-4:]
	method := models.PaymentMethod{
		ID:     "card-" + uuid.New().String(),
		Type:   models.PaymentCard,
		Brand:  "visa",
		Last4:  last4,
		Expiry: input.Expiry,
		Label:  "Visa ending in " + last4,
	}
	s.paymentMethods = append(s.paymentMethods, method)
	s.popLocked()
	s.mu.Unlock()
	s.notifyChange()
}

// AddBankAccount validates the bank form, appends the new method and pops
// back to the payment-method list.
func (s *Session) AddBankAccount(input models.BankAccountInput) {
	s.mu.Lock()
	s.bannerError = ""
	if errs := ValidateBankAccount(input); len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		s.notifyChange()
		return
	}
	s.fieldErrors = nil
	account := digitsOnly(input.AccountNumber)
	last4 := account[len(account)-4:]
	method := models.PaymentMethod{
		ID:       "bank-" + uuid.New().String(),
		Type:     models.PaymentBank,
		BankName: input.BankName,
		Last4:    last4,
		Label:    fmt.Sprintf("%s ••••%s", input.BankName, last4),
	}
	s.paymentMethods = append(s.paymentMethods, method)
	s.popLocked()
	s.mu.Unlock()
	s.notifyChange()
}

// DeletePaymentMethod removes a method by id. The cash method is the
// protected default and cannot be deleted; deleting the selected method
// falls the selection back to cash.
func (s *Session) DeletePaymentMethod(id string) {
	if id == models.DefaultPaymentMethodID {
		return
	}
	s.mu.Lock()
	kept := make([]models.PaymentMethod, 0, len(s.paymentMethods))
	removed := false
	for _, pm := range s.paymentMethods {
		if pm.ID == id {
			removed = true
			continue
		}
		kept = append(kept, pm)
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.paymentMethods = kept
	if s.selectedPaymentID == id {
		s.selectedPaymentID = models.DefaultPaymentMethodID
	}
	s.mu.Unlock()
	s.notifyChange()
}

// PaymentMethods returns a copy of the registered methods.
func (s *Session) PaymentMethods() []models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PaymentMethod, len(s.paymentMethods))
	copy(out, s.paymentMethods)
	return out
}
