package routes

import (
	"net/http"
	"time"

	"trustmate/handlers"
	"trustmate/middleware"
	"trustmate/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers session lifecycle endpoints.
func RegisterSessionRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	api := r.Group("/api/session")
	{
		api.POST("", h.CreateSessionHandler)

		// Everything below needs a resolvable session token.
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.GET("/snapshot", h.GetSnapshotHandler)
		api.POST("/logout", h.LogoutHandler)
		api.DELETE("", h.DeleteSessionHandler)
	}
}

// RegisterAuthRoutes registers the auth flows of a session.
func RegisterAuthRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	api := r.Group("/api/auth")
	{
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.POST("/login", h.LoginHandler)
		api.POST("/signup", h.SignupHandler)
		api.POST("/otp", h.RequestOtpHandler)
		api.POST("/reset-password", h.ResetPasswordHandler)
		api.POST("/change-password", h.ChangePasswordHandler)
		api.POST("/role", h.ChooseRoleHandler)
		api.POST("/technician-onboarding", h.TechnicianOnboardingHandler)
	}
}

// RegisterNavigationRoutes registers the navigation-stack endpoints.
func RegisterNavigationRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	api := r.Group("/api/navigation")
	{
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.POST("/push", h.PushHandler)
		api.POST("/pop", h.PopHandler)
		api.POST("/reset", h.ResetHandler)
		api.POST("/menu", h.MenuNavigateHandler)
	}
}

// RegisterBookingRoutes registers the catalog, wizard and booking-list
// endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	r.GET("/api/services", h.ServicesHandler)

	api := r.Group("/api/booking")
	{
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.POST("/service/:id", h.SelectServiceHandler)
		api.POST("/start", h.StartBookingHandler)
		api.PATCH("/draft", h.UpdateDraftHandler)
		api.POST("/advance", h.AdvanceWizardHandler)
		api.POST("/back", h.BackWizardHandler)
		api.POST("/commit", h.CommitBookingHandler)
		api.GET("", h.ListBookingsHandler)
		api.POST("/cancel/:id", h.RequestCancelHandler)
		api.POST("/cancel/dismiss", h.DismissCancelHandler)
		api.POST("/cancel/confirm", h.ConfirmCancelHandler)
		api.POST("/track/:id", h.OpenTrackingHandler)
		api.POST("/technician/:id", h.ViewTechnicianHandler)
	}
}

// RegisterPaymentRoutes registers payment-method management endpoints.
func RegisterPaymentRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	api := r.Group("/api/payment-methods")
	{
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.GET("", h.ListPaymentMethodsHandler)
		api.POST("/select/:id", h.SelectPaymentMethodHandler)
		api.POST("/card", h.AddCardHandler)
		api.POST("/bank", h.AddBankAccountHandler)
		api.DELETE("/:id", h.DeletePaymentMethodHandler)
	}
}

// RegisterRatingRoutes registers rating endpoints.
func RegisterRatingRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	api := r.Group("/api/rating")
	{
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.POST("/open/:id", h.OpenRatingHandler)
		api.POST("/submit", h.SubmitRatingHandler)
	}
}

// RegisterNotificationRoutes registers notification-feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.GET("", h.ListNotificationsHandler)
		api.POST("/read/:id", h.MarkNotificationReadHandler)
		api.POST("/read-all", h.MarkAllNotificationsReadHandler)
		api.POST("/prefs/toggle", h.ToggleNotificationPrefHandler)
	}
}

// RegisterProfileRoutes registers technician profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.SessionAuthMiddleware(manager))
		api.PUT("/technician", h.SaveTechnicianProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TrustMate"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.SessionHandler, manager *session.Manager) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSessionRoutes(r, h, manager)
	RegisterAuthRoutes(r, h, manager)
	RegisterNavigationRoutes(r, h, manager)
	RegisterBookingRoutes(r, h, manager)
	RegisterPaymentRoutes(r, h, manager)
	RegisterRatingRoutes(r, h, manager)
	RegisterNotificationRoutes(r, h, manager)
	RegisterProfileRoutes(r, h, manager)
}
