package handlers

import (
	"net/http"

	"trustmate/models"

	"github.com/gin-gonic/gin"
)

// ListPaymentMethodsHandler returns the registered payment methods.
func (h *SessionHandler) ListPaymentMethodsHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethods": sess.PaymentMethods()})
}

// SelectPaymentMethodHandler records the checkout payment method.
func (h *SessionHandler) SelectPaymentMethodHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.SelectPaymentMethod(c.Param("id"))
	respondSnapshot(c, sess)
}

// AddCardHandler validates and registers a new card.
func (h *SessionHandler) AddCardHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input models.CardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.AddCard(input)
	respondSnapshot(c, sess)
}

// AddBankAccountHandler validates and registers a new bank account.
func (h *SessionHandler) AddBankAccountHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var input models.BankAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess.AddBankAccount(input)
	respondSnapshot(c, sess)
}

// DeletePaymentMethodHandler removes a payment method. The cash default is
// protected.
func (h *SessionHandler) DeletePaymentMethodHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.DeletePaymentMethod(c.Param("id"))
	respondSnapshot(c, sess)
}
