package handlers

import (
	"net/http"

	"trustmate/models"

	"github.com/gin-gonic/gin"
)

func bindScreen(c *gin.Context) (models.Screen, bool) {
	var input struct {
		Screen string `json:"screen"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return "", false
	}
	screen, ok := models.ParseScreen(input.Screen)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown screen", "screen": input.Screen})
		return "", false
	}
	return screen, true
}

// PushHandler pushes a screen onto the navigation stack.
func (h *SessionHandler) PushHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	screen, ok := bindScreen(c)
	if !ok {
		return
	}
	sess.Push(screen)
	respondSnapshot(c, sess)
}

// PopHandler pops the top screen. Popping the root is a no-op.
func (h *SessionHandler) PopHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Pop()
	respondSnapshot(c, sess)
}

// ResetHandler replaces the stack with a single screen.
func (h *SessionHandler) ResetHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	screen, ok := bindScreen(c)
	if !ok {
		return
	}
	sess.Reset(screen)
	respondSnapshot(c, sess)
}

// MenuNavigateHandler applies the sidebar navigation semantics.
func (h *SessionHandler) MenuNavigateHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	screen, ok := bindScreen(c)
	if !ok {
		return
	}
	sess.NavigateFromMenu(screen)
	respondSnapshot(c, sess)
}
