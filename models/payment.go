package models

type PaymentMethodType string

const (
	PaymentCard PaymentMethodType = "card"
	PaymentCash PaymentMethodType = "cash"
	PaymentBank PaymentMethodType = "bank"
)

// DefaultPaymentMethodID is the protected cash method: it is always present,
// cannot be deleted, and selection falls back to it.
const DefaultPaymentMethodID = "cash"

// PaymentMethod is a stored payment instrument. Card and bank numbers are
// never retained beyond the last four digits.
type PaymentMethod struct {
	ID       string            `json:"id"`
	Type     PaymentMethodType `json:"type"`
	Brand    string            `json:"brand,omitempty"`
	BankName string            `json:"bankName,omitempty"`
	Last4    string            `json:"last4,omitempty"`
	Expiry   string            `json:"expiry,omitempty"`
	Label    string            `json:"label"`
}

// CardInput is the add-card form.
type CardInput struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
	Name   string `json:"name"`
}

// BankAccountInput is the add-bank-account form.
type BankAccountInput struct {
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
}
