package handlers

import (
	"net/http"

	"trustmate/models"

	"github.com/gin-gonic/gin"
)

// SaveTechnicianProfileHandler applies the edit-profile form to the loaded
// technician profile.
func (h *SessionHandler) SaveTechnicianProfileHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input models.TechnicianProfileEdit
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.SaveTechnicianProfile(c.Request.Context(), input)
	respondSnapshot(c, sess)
}
