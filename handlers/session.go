package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateSessionHandler starts a fresh session and returns its bearer token
// with the initial snapshot (login screen, seeded defaults).
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	sess, token, err := h.Manager.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"snapshot": sess.Snapshot(),
	})
}

// GetSnapshotHandler returns the current session snapshot.
func (h *SessionHandler) GetSnapshotHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	respondSnapshot(c, sess)
}

// LogoutHandler signs the user out and resets the session to the login
// screen. The session itself stays alive.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Logout()
	respondSnapshot(c, sess)
}

// DeleteSessionHandler evicts the session entirely, cancelling all scheduled
// work.
func (h *SessionHandler) DeleteSessionHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	h.Manager.Evict(sess.ID())
	c.JSON(http.StatusOK, gin.H{"status": "session closed"})
}
