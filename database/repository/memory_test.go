package repository

import (
	"context"
	"errors"
	"testing"

	"trustmate/models"
)

func TestMemoryBookingRepoNewestFirst(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, &models.Booking{ID: id, UserID: "u1"}); err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
	}
	got, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 3 || got[0].ID != "c" || got[2].ID != "a" {
		t.Fatalf("order = %v, want newest first", got)
	}
}

func TestMemoryBookingRepoListIncludesSeeds(t *testing.T) {
	repo := NewMemoryBookingRepo(models.Booking{ID: "seed"})
	ctx := context.Background()
	if err := repo.Create(ctx, &models.Booking{ID: "mine", UserID: "u1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("list = %v, want seed plus own booking", got)
	}

	// Another user sees the seed but not u1's booking.
	other, err := repo.ListByUser(ctx, "u2")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(other) != 1 || other[0].ID != "seed" {
		t.Fatalf("other user's list = %v", other)
	}
}

func TestMemoryBookingRepoUpdateStatusCopyOnWrite(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()
	if err := repo.Create(ctx, &models.Booking{ID: "a", UserID: "u1", Status: models.StatusUpcoming}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	before, _ := repo.ListByUser(ctx, "u1")
	if err := repo.UpdateStatus(ctx, "a", models.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	after, _ := repo.ListByUser(ctx, "u1")

	if before[0].Status != models.StatusUpcoming {
		t.Fatalf("previously returned slice mutated: %s", before[0].Status)
	}
	if after[0].Status != models.StatusCancelled {
		t.Fatalf("status not updated: %s", after[0].Status)
	}

	if err := repo.UpdateStatus(ctx, "missing", models.StatusCancelled); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateStatus(missing) = %v, want ErrNotFound", err)
	}
}

func TestMemoryTechnicianRepoAddReview(t *testing.T) {
	repo := NewMemoryTechnicianRepo(models.Technician{
		ID:          "t1",
		Rating:      4.7,
		ReviewCount: 3,
		Reviews: []models.Review{
			{ID: "r1", Rating: 5},
			{ID: "r2", Rating: 4},
			{ID: "r3", Rating: 5},
		},
	})
	ctx := context.Background()

	got, err := repo.AddReview(ctx, "t1", models.Review{ID: "r4", Rating: 4})
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if got.Rating != 4.5 {
		t.Fatalf("rating = %v, want 4.5", got.Rating)
	}
	if got.ReviewCount != 4 {
		t.Fatalf("review count = %d, want 4", got.ReviewCount)
	}
	if got.Reviews[0].ID != "r4" {
		t.Fatalf("new review not prepended: %v", got.Reviews)
	}

	if _, err := repo.AddReview(ctx, "missing", models.Review{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddReview(missing) = %v, want ErrNotFound", err)
	}
}

func TestMemoryTechnicianRepoReturnsCopies(t *testing.T) {
	repo := NewMemoryTechnicianRepo(models.Technician{
		ID:      "t1",
		Reviews: []models.Review{{ID: "r1", Rating: 5}},
	})
	ctx := context.Background()

	first, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	first.Reviews[0].Rating = 1
	first.Name = "mutated"

	second, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if second.Reviews[0].Rating != 5 || second.Name == "mutated" {
		t.Fatalf("stored technician was mutated through a returned copy: %+v", second)
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"mean rounds to one decimal", []int{5, 4, 5, 4}, 4.5},
		{"thirds round", []int{5, 4, 4}, 4.3},
		{"two thirds round", []int{5, 5, 4}, 4.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]models.Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = models.Review{Rating: r}
			}
			if got := AverageRating(reviews); got != tt.want {
				t.Fatalf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}
