package models

// WizardSnapshot is the read-only view of the booking wizard.
type WizardSnapshot struct {
	Active   bool          `json:"active"`
	Step     WizardStep    `json:"step"`
	Draft    *BookingDraft `json:"draft,omitempty"`
	Complete bool          `json:"complete"`
}

// SessionSnapshot is the full read-only view of session state handed to the
// rendering collaborator after every mutation. All slices and pointers are
// copies; mutating a snapshot never touches live session state.
type SessionSnapshot struct {
	SessionID        string              `json:"sessionId"`
	Screen           Screen              `json:"screen"`
	Direction        TransitionDirection `json:"direction"`
	User             *User               `json:"user,omitempty"`
	Loading          bool                `json:"loading"`
	Error            string              `json:"error,omitempty"`
	FieldErrors      map[string]string   `json:"fieldErrors,omitempty"`
	Wizard           WizardSnapshot      `json:"wizard"`
	Bookings         []Booking           `json:"bookings"`
	Notifications    []Notification      `json:"notifications"`
	Prefs            NotificationPrefs   `json:"prefs"`
	PaymentMethods   []PaymentMethod     `json:"paymentMethods"`
	SelectedPayment  string              `json:"selectedPayment"`
	Technician       *Technician         `json:"technician,omitempty"`
	SelectedService  string              `json:"selectedService,omitempty"`
	TrackingBooking  string              `json:"trackingBooking,omitempty"`
	TrackingProgress float64             `json:"trackingProgress"`
}
