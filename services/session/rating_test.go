package session

import (
	"context"
	"testing"

	"trustmate/models"
)

func TestSubmitRatingUpdatesTechnician(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.Push(models.ScreenMyBookings)
	sess.OpenRating("102")
	if got := sess.Snapshot().Screen; got != models.ScreenRating {
		t.Fatalf("screen = %s, want %s", got, models.ScreenRating)
	}

	// Seed reviews are [5,4,5]; adding a 4 makes the mean 4.5.
	sess.SubmitRating(context.Background(), 4, "Solid work.")

	snap := sess.Snapshot()
	if snap.Screen != models.ScreenMyBookings {
		t.Fatalf("screen after submit = %s, want %s", snap.Screen, models.ScreenMyBookings)
	}
	tech := snap.Technician
	if tech == nil {
		t.Fatal("technician profile not updated in session")
	}
	if tech.Rating != 4.5 {
		t.Fatalf("technician rating = %v, want 4.5", tech.Rating)
	}
	if tech.ReviewCount != 129 {
		t.Fatalf("review count = %d, want 129", tech.ReviewCount)
	}
	if len(tech.Reviews) != 4 || tech.Reviews[0].Comment != "Solid work." {
		t.Fatalf("new review not prepended: %+v", tech.Reviews)
	}
	if tech.Reviews[0].Date != "Just now" {
		t.Fatalf("new review date = %q", tech.Reviews[0].Date)
	}

	// The rated booking carries the rating.
	for _, b := range snap.Bookings {
		if b.ID == "102" {
			if b.Rating != 4 || b.Review != "Solid work." {
				t.Fatalf("booking 102 rating = %d review = %q", b.Rating, b.Review)
			}
			return
		}
	}
	t.Fatal("booking 102 missing from session list")
}

func TestSubmitRatingRejectsZero(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.OpenRating("102")
	sess.SubmitRating(context.Background(), 0, "should not land")

	snap := sess.Snapshot()
	if snap.Screen != models.ScreenRating {
		t.Fatalf("zero rating left the rating screen: %s", snap.Screen)
	}
	tech, err := env.techs.GetByID(context.Background(), models.MockTechnicianID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if tech.ReviewCount != 128 {
		t.Fatalf("zero rating changed review count to %d", tech.ReviewCount)
	}
}

func TestSubmitRatingOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.OpenRating("102")
	sess.SubmitRating(context.Background(), 6, "too high")

	tech, err := env.techs.GetByID(context.Background(), models.MockTechnicianID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if tech.ReviewCount != 128 {
		t.Fatalf("out-of-range rating changed review count to %d", tech.ReviewCount)
	}
}
