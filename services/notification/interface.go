package notification

import "context"

// BookingDetails is the payload of a booking confirmation message.
type BookingDetails struct {
	ServiceName    string  `json:"serviceName"`
	TechnicianName string  `json:"technicianName"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Address        string  `json:"address"`
	Price          float64 `json:"price"`
}

// DeliveryService is the outbound notification collaborator. Sends are
// fire-and-forget: a false return or error never rolls back the booking that
// triggered them.
type DeliveryService interface {
	SendBookingConfirmation(ctx context.Context, email string, details BookingDetails) bool
	SendReminder(ctx context.Context, email, title, body string) bool
}
