package repository

import (
	"context"
	"math"
	"sync"

	"trustmate/models"
)

// MemoryBookingRepo is a deterministic in-memory BookingRepository. It backs
// tests and offline mode, and applies every update copy-on-write: records are
// replaced by id, never mutated in place.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

// NewMemoryBookingRepo returns an empty in-memory repo, optionally seeded.
func NewMemoryBookingRepo(seed ...models.Booking) *MemoryBookingRepo {
	r := &MemoryBookingRepo{}
	r.bookings = append(r.bookings, seed...)
	return r
}

func (r *MemoryBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first.
	r.bookings = append([]models.Booking{*booking}, r.bookings...)
	return nil
}

func (r *MemoryBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.UserID == "" || b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == id {
			updated := b
			updated.Status = status
			r.bookings[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryBookingRepo) SubmitReview(ctx context.Context, id string, rating int, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == id {
			updated := b
			updated.Rating = rating
			updated.Review = comment
			r.bookings[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

// MemoryTechnicianRepo is the in-memory TechnicianRepository.
type MemoryTechnicianRepo struct {
	mu    sync.Mutex
	techs map[string]models.Technician
}

func NewMemoryTechnicianRepo(seed ...models.Technician) *MemoryTechnicianRepo {
	r := &MemoryTechnicianRepo{techs: make(map[string]models.Technician)}
	for _, t := range seed {
		r.techs[t.ID] = t
	}
	return r
}

func (r *MemoryTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.techs[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := t
	copied.Reviews = append([]models.Review(nil), t.Reviews...)
	copied.Portfolio = append([]string(nil), t.Portfolio...)
	return &copied, nil
}

func (r *MemoryTechnicianRepo) Update(ctx context.Context, tech *models.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.techs[tech.ID]; !ok {
		return ErrNotFound
	}
	r.techs[tech.ID] = *tech
	return nil
}

func (r *MemoryTechnicianRepo) AddReview(ctx context.Context, techID string, review models.Review) (*models.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.techs[techID]
	if !ok {
		return nil, ErrNotFound
	}
	updated := t
	updated.Reviews = append([]models.Review{review}, t.Reviews...)
	updated.Rating = AverageRating(updated.Reviews)
	updated.ReviewCount = t.ReviewCount + 1
	r.techs[techID] = updated

	copied := updated
	copied.Reviews = append([]models.Review(nil), updated.Reviews...)
	copied.Portfolio = append([]string(nil), updated.Portfolio...)
	return &copied, nil
}

// AverageRating computes the arithmetic mean of all review ratings, rounded to
// one decimal place.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
