package models

// Screen identifies a UI view. Rendering is owned by the client; the session
// core only tracks which screen is active and how it was reached.
type Screen string

const (
	ScreenLogin                Screen = "LOGIN"
	ScreenSignup               Screen = "SIGNUP"
	ScreenForgotPassword       Screen = "FORGOT_PASSWORD"
	ScreenResetPassword        Screen = "RESET_PASSWORD"
	ScreenTechPrompt           Screen = "TECH_PROMPT"
	ScreenDashboard            Screen = "DASHBOARD"
	ScreenServiceDetail        Screen = "SERVICE_DETAIL"
	ScreenBooking              Screen = "BOOKING"
	ScreenMyBookings           Screen = "MY_BOOKINGS"
	ScreenTechnicianOnboarding Screen = "TECHNICIAN_ONBOARDING"
	ScreenAllServices          Screen = "ALL_SERVICES"
	ScreenSettings             Screen = "SETTINGS"
	ScreenHelpSupport          Screen = "HELP_SUPPORT"
	ScreenTechnicianProfile    Screen = "TECHNICIAN_PROFILE"
	ScreenEditProfile          Screen = "EDIT_PROFILE"
	ScreenPaymentMethods       Screen = "PAYMENT_METHODS"
	ScreenAddPaymentMethod     Screen = "ADD_PAYMENT_METHOD"
	ScreenAddBankAccount       Screen = "ADD_BANK_ACCOUNT"
	ScreenTracking             Screen = "TRACKING"
	ScreenRating               Screen = "RATING"
	ScreenChangePassword       Screen = "CHANGE_PASSWORD"
	ScreenNotifications        Screen = "NOTIFICATIONS"
)

var knownScreens = map[Screen]struct{}{
	ScreenLogin: {}, ScreenSignup: {}, ScreenForgotPassword: {}, ScreenResetPassword: {},
	ScreenTechPrompt: {}, ScreenDashboard: {}, ScreenServiceDetail: {}, ScreenBooking: {},
	ScreenMyBookings: {}, ScreenTechnicianOnboarding: {}, ScreenAllServices: {}, ScreenSettings: {},
	ScreenHelpSupport: {}, ScreenTechnicianProfile: {}, ScreenEditProfile: {}, ScreenPaymentMethods: {},
	ScreenAddPaymentMethod: {}, ScreenAddBankAccount: {}, ScreenTracking: {}, ScreenRating: {},
	ScreenChangePassword: {}, ScreenNotifications: {},
}

// ParseScreen validates a wire-format screen name.
func ParseScreen(s string) (Screen, bool) {
	screen := Screen(s)
	_, ok := knownScreens[screen]
	return screen, ok
}

// TransitionDirection tags the most recent navigation mutation so the client
// can pick an animation. It carries no navigation semantics.
type TransitionDirection string

const (
	DirectionForward  TransitionDirection = "forward"
	DirectionBackward TransitionDirection = "backward"
	DirectionNone     TransitionDirection = "none"
)
