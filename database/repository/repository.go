package repository

import (
	"context"
	"errors"

	"trustmate/models"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// BookingRepository is the persistence collaborator for bookings. New bookings
// are listed newest-first.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	SubmitReview(ctx context.Context, id string, rating int, comment string) error
}

// TechnicianRepository stores technician profiles and their review lists.
type TechnicianRepository interface {
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	Update(ctx context.Context, tech *models.Technician) error
	AddReview(ctx context.Context, techID string, review models.Review) (*models.Technician, error)
}
