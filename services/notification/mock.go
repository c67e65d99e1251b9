package notification

import (
	"context"

	"trustmate/utils"

	"go.uber.org/zap"
)

// MockDeliveryService logs outgoing mail instead of sending it.
type MockDeliveryService struct{}

func NewMockDeliveryService() *MockDeliveryService {
	return &MockDeliveryService{}
}

func (s *MockDeliveryService) SendBookingConfirmation(ctx context.Context, email string, details BookingDetails) bool {
	utils.GetLogger().Info("Sending booking confirmation email",
		zap.String("to", email),
		zap.String("service", details.ServiceName),
		zap.String("technician", details.TechnicianName),
		zap.String("date", details.Date),
		zap.String("time", details.Time),
		zap.Float64("price", details.Price),
	)
	return true
}

func (s *MockDeliveryService) SendReminder(ctx context.Context, email, title, body string) bool {
	utils.GetLogger().Info("Sending reminder email",
		zap.String("to", email),
		zap.String("title", title),
		zap.String("body", body),
	)
	return true
}
