package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking. Confirmed,
// OnTheWay and InProgress are reserved for server-driven tracking and are not
// produced locally yet.
type BookingStatus string

const (
	StatusUpcoming   BookingStatus = "UPCOMING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusOnTheWay   BookingStatus = "ON_THE_WAY"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// Booking represents a persisted booking record.
type Booking struct {
	ID             string        `bson:"id" json:"id"`
	UserID         string        `bson:"user_id" json:"userId"`
	ServiceID      string        `bson:"service_id" json:"serviceId"`
	Date           time.Time     `bson:"date" json:"date"`
	Time           string        `bson:"time" json:"time"` // slot label, e.g. "10:00 AM"
	Status         BookingStatus `bson:"status" json:"status"`
	TechnicianName string        `bson:"technician_name,omitempty" json:"technicianName,omitempty"`
	Address        string        `bson:"address" json:"address"`
	Description    string        `bson:"description" json:"description"`
	Price          float64       `bson:"price" json:"price"`
	Rating         int           `bson:"rating,omitempty" json:"rating,omitempty"`
	Review         string        `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt      time.Time     `bson:"created_at" json:"createdAt"`
}

// BookingDraft is the mutable in-progress record the wizard edits. At most one
// draft exists per session.
type BookingDraft struct {
	ServiceID   string    `json:"serviceId"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	PaymentID   string    `json:"paymentId"`
}

// WizardStep indexes the three booking wizard screens.
type WizardStep int

const (
	StepDateTime WizardStep = 0
	StepDetails  WizardStep = 1
	StepReview   WizardStep = 2
)

// TimeSlots is the fixed set of bookable slot labels.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "01:00 PM", "02:00 PM",
	"03:00 PM", "04:00 PM", "05:00 PM",
}
