package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServicesHandler lists the service catalog.
func (h *SessionHandler) ServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": servicesCatalog()})
}

// SelectServiceHandler opens the service detail screen.
func (h *SessionHandler) SelectServiceHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.SelectService(c.Param("id"))
	respondSnapshot(c, sess)
}

// StartBookingHandler enters the booking wizard for the selected service.
func (h *SessionHandler) StartBookingHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.StartBooking()
	respondSnapshot(c, sess)
}

// UpdateDraftHandler applies partial updates to the wizard draft. Only the
// fields present in the body are touched.
func (h *SessionHandler) UpdateDraftHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		Date        *string `json:"date"`
		Time        *string `json:"time"`
		Address     *string `json:"address"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Date != nil {
		date, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		sess.SetDraftDate(date)
	}
	if input.Time != nil {
		sess.SetDraftTime(*input.Time)
	}
	if input.Address != nil {
		sess.SetDraftAddress(*input.Address)
	}
	if input.Description != nil {
		sess.SetDraftDescription(*input.Description)
	}
	respondSnapshot(c, sess)
}

// AdvanceWizardHandler moves the wizard forward if the step gate passes.
func (h *SessionHandler) AdvanceWizardHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.AdvanceWizard()
	respondSnapshot(c, sess)
}

// BackWizardHandler moves the wizard backward, exiting at step 0.
func (h *SessionHandler) BackWizardHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.BackWizard()
	respondSnapshot(c, sess)
}

// CommitBookingHandler confirms the reviewed draft.
func (h *SessionHandler) CommitBookingHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Commit(c.Request.Context())
	respondSnapshot(c, sess)
}

// ListBookingsHandler reloads and returns the user's bookings.
func (h *SessionHandler) ListBookingsHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.RefreshBookings(c.Request.Context())
	if tab := c.Query("tab"); tab != "" {
		c.JSON(http.StatusOK, gin.H{"bookings": sess.BookingsByTab(tab)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": sess.Bookings()})
}

// RequestCancelHandler opens the two-phase cancel confirmation.
func (h *SessionHandler) RequestCancelHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.RequestCancelBooking(c.Param("id"))
	respondSnapshot(c, sess)
}

// DismissCancelHandler keeps the booking.
func (h *SessionHandler) DismissCancelHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.DismissCancelBooking()
	respondSnapshot(c, sess)
}

// ConfirmCancelHandler cancels the pending booking.
func (h *SessionHandler) ConfirmCancelHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.ConfirmCancelBooking(c.Request.Context())
	respondSnapshot(c, sess)
}

// OpenTrackingHandler opens the live-tracking screen for a booking.
func (h *SessionHandler) OpenTrackingHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.OpenTracking(c.Param("id"))
	respondSnapshot(c, sess)
}

// ViewTechnicianHandler loads a technician profile and opens its screen.
func (h *SessionHandler) ViewTechnicianHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.ViewTechnician(c.Request.Context(), c.Param("id"))
	respondSnapshot(c, sess)
}
