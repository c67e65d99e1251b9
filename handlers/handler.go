package handlers

import (
	"net/http"

	"trustmate/middleware"
	"trustmate/services/session"
	"trustmate/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the session core over HTTP. Every mutating endpoint
// responds with the snapshot produced by the mutation so a client can render
// without a second round trip.
type SessionHandler struct {
	Manager *session.Manager
}

func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{Manager: manager}
}

// currentSession pulls the session placed by the auth middleware. A missing
// session aborts the request.
func currentSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "no session in request context")
		c.Abort()
	}
	return sess, ok
}

func respondSnapshot(c *gin.Context, sess *session.Session) {
	c.JSON(http.StatusOK, gin.H{"snapshot": sess.Snapshot()})
}
