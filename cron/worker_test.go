package cron

import (
	"testing"
	"time"

	"trustmate/models"
)

func TestAppointmentTime(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		slot string
		want time.Time
	}{
		{"morning slot", "10:00 AM", time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
		{"afternoon slot", "02:00 PM", time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)},
		{"unparseable slot falls back to date", "soonish", date},
		{"empty slot falls back to date", "", date},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.Booking{Date: date, Time: tt.slot}
			if got := appointmentTime(b); !got.Equal(tt.want) {
				t.Fatalf("appointmentTime(%q) = %v, want %v", tt.slot, got, tt.want)
			}
		})
	}
}
