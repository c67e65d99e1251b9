package session

import (
	"context"
	"testing"

	"trustmate/models"
)

func TestTwoPhaseCancellation(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.RequestCancelBooking("101")
	if got := bookingStatus(t, sess, "101"); got != models.StatusUpcoming {
		t.Fatalf("request alone changed status to %s", got)
	}

	// Keeping the booking leaves it untouched.
	sess.DismissCancelBooking()
	sess.ConfirmCancelBooking(context.Background())
	if got := bookingStatus(t, sess, "101"); got != models.StatusUpcoming {
		t.Fatalf("confirm after dismiss changed status to %s", got)
	}

	sess.RequestCancelBooking("101")
	sess.ConfirmCancelBooking(context.Background())
	if got := bookingStatus(t, sess, "101"); got != models.StatusCancelled {
		t.Fatalf("status after confirm = %s, want %s", got, models.StatusCancelled)
	}

	// The repository mirrors the cancellation.
	stored, err := env.bookings.ListByUser(context.Background(), "")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	for _, b := range stored {
		if b.ID == "101" && b.Status != models.StatusCancelled {
			t.Fatalf("repository status = %s", b.Status)
		}
	}
}

func TestCancelUnknownBookingIsHarmless(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.RequestCancelBooking("nope")
	sess.ConfirmCancelBooking(context.Background())
	snap := sess.Snapshot()
	if len(snap.Bookings) != 3 {
		t.Fatalf("booking count = %d", len(snap.Bookings))
	}
	for _, b := range snap.Bookings {
		if b.Status == models.StatusCancelled {
			t.Fatalf("unexpected cancellation of %s", b.ID)
		}
	}
}

func TestBookingsByTab(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	upcoming := sess.BookingsByTab("upcoming")
	if len(upcoming) != 1 || upcoming[0].ID != "101" {
		t.Fatalf("upcoming tab = %v", upcoming)
	}

	past := sess.BookingsByTab("past")
	if len(past) != 2 {
		t.Fatalf("past tab = %v", past)
	}

	sess.RequestCancelBooking("101")
	sess.ConfirmCancelBooking(context.Background())
	if got := sess.BookingsByTab("upcoming"); len(got) != 0 {
		t.Fatalf("upcoming after cancel = %v", got)
	}
	if got := sess.BookingsByTab("past"); len(got) != 3 {
		t.Fatalf("past after cancel = %v", got)
	}
}

func TestViewTechnician(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.ViewTechnician(context.Background(), models.MockTechnicianID)
	snap := sess.Snapshot()
	if snap.Screen != models.ScreenTechnicianProfile {
		t.Fatalf("screen = %s", snap.Screen)
	}
	if snap.Technician == nil || snap.Technician.Name != "Mike Reynolds" {
		t.Fatalf("technician = %+v", snap.Technician)
	}
	if snap.Technician.Rating != 4.9 || snap.Technician.ReviewCount != 128 {
		t.Fatalf("technician stats = %v/%d", snap.Technician.Rating, snap.Technician.ReviewCount)
	}
}

func TestViewTechnicianNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.ViewTechnician(context.Background(), "missing")
	snap := sess.Snapshot()
	if snap.Screen == models.ScreenTechnicianProfile {
		t.Fatal("missing technician still opened the profile screen")
	}
	if snap.Error == "" {
		t.Fatal("missing technician produced no banner")
	}
}

func TestSaveTechnicianProfile(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	sess := env.sess

	sess.ViewTechnician(context.Background(), models.MockTechnicianID)
	sess.Push(models.ScreenEditProfile)
	sess.SaveTechnicianProfile(context.Background(), models.TechnicianProfileEdit{
		Name:       "Mike Reynolds",
		Role:       "Lead Technician",
		Experience: "9 Years",
		About:      "Updated bio.",
	})

	snap := sess.Snapshot()
	if snap.Screen != models.ScreenTechnicianProfile {
		t.Fatalf("screen after save = %s", snap.Screen)
	}
	if snap.Technician.Role != "Lead Technician" || snap.Technician.Experience != "9 Years" {
		t.Fatalf("technician after save = %+v", snap.Technician)
	}

	stored, err := env.techs.GetByID(context.Background(), models.MockTechnicianID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.About != "Updated bio." {
		t.Fatalf("repository about = %q", stored.About)
	}
}

func TestNotificationPrefToggles(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	prefs := sess.NotificationPrefs()
	if !prefs.Push || !prefs.Email || prefs.SMS {
		t.Fatalf("seeded prefs = %+v", prefs)
	}

	sess.ToggleNotificationPref("sms")
	sess.ToggleNotificationPref("push")
	prefs = sess.NotificationPrefs()
	if prefs.Push || !prefs.SMS {
		t.Fatalf("prefs after toggles = %+v", prefs)
	}

	sess.ToggleNotificationPref("bogus")
	if got := sess.NotificationPrefs(); got != prefs {
		t.Fatalf("unknown key changed prefs: %+v", got)
	}
}

func TestMarkNotificationsRead(t *testing.T) {
	env := newTestEnv(t)
	sess := env.sess

	if got := sess.UnreadCount(); got != 1 {
		t.Fatalf("seeded unread = %d, want 1 (welcome)", got)
	}
	welcome := sess.Notifications()[0]
	sess.MarkNotificationRead(welcome.ID)
	if got := sess.UnreadCount(); got != 0 {
		t.Fatalf("unread after mark = %d", got)
	}
}
