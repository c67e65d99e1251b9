package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OpenRatingHandler opens the rating screen for a booking.
func (h *SessionHandler) OpenRatingHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.OpenRating(c.Param("id"))
	respondSnapshot(c, sess)
}

// SubmitRatingHandler submits a 1-5 star rating with an optional comment.
func (h *SessionHandler) SubmitRatingHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.SubmitRating(c.Request.Context(), input.Rating, input.Comment)
	respondSnapshot(c, sess)
}
