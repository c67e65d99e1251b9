package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler returns the notification feed, newest first.
func (h *SessionHandler) ListNotificationsHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": sess.Notifications(),
		"unread":        sess.UnreadCount(),
	})
}

// MarkNotificationReadHandler flags one notification as read.
func (h *SessionHandler) MarkNotificationReadHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.MarkNotificationRead(c.Param("id"))
	respondSnapshot(c, sess)
}

// MarkAllNotificationsReadHandler flags the whole feed as read.
func (h *SessionHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.MarkAllNotificationsRead()
	respondSnapshot(c, sess)
}

// ToggleNotificationPrefHandler flips one of the push/email/sms switches.
func (h *SessionHandler) ToggleNotificationPrefHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.ToggleNotificationPref(input.Key)
	respondSnapshot(c, sess)
}
