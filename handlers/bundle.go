package handlers

import (
	"errors"
	"net/http"

	userRepoPkg "lawyerup/database/repository/user"
	"lawyerup/models"
	"lawyerup/services/booking"
	"lawyerup/services/cases"
	"lawyerup/services/document"
	"lawyerup/services/event"
	"lawyerup/services/notification"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	CreateGuestBookingHandler  gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	RescheduleBookingHandler   gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc

	// Calendar endpoints
	CreateEventHandler gin.HandlerFunc
	ListEventsHandler  gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	MarkNotificationHandler  gin.HandlerFunc

	// Case endpoints
	CreateCaseHandler gin.HandlerFunc
	ListCasesHandler  gin.HandlerFunc
	GetCaseHandler    gin.HandlerFunc
	UpdateCaseHandler gin.HandlerFunc

	// Document endpoints
	CreateDocumentHandler gin.HandlerFunc
	ListDocumentsHandler  gin.HandlerFunc
	ShareDocumentHandler  gin.HandlerFunc

	// Message endpoints
	SendMessageHandler         gin.HandlerFunc
	GetConversationHandler     gin.HandlerFunc
	RecentConversationsHandler gin.HandlerFunc

	// Network board endpoints
	NetworkFeedHandler        gin.HandlerFunc
	PostNetworkMessageHandler gin.HandlerFunc

	// Dashboard endpoints
	LawyerDashboardHandler gin.HandlerFunc
	ClientDashboardHandler gin.HandlerFunc
}

// currentUser retrieves the authenticated user placed in the context by the
// auth middleware. Aborts with 401 when absent.
func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("currentUser")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing authenticated user")
		return nil, false
	}
	usr, ok := val.(*models.User)
	if !ok || usr == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing authenticated user")
		return nil, false
	}
	return usr, true
}

// respondServiceError maps service layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var permErr *booking.PermissionError
	var nfErr *booking.NotFoundError
	var conflictErr *booking.SchedulingConflictError
	var timeErr *booking.MalformedTimeError
	var transErr *booking.InvalidTransitionError

	switch {
	case errors.As(err, &permErr) || errors.Is(err, event.ErrPermission):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case errors.As(err, &nfErr) ||
		errors.Is(err, event.ErrNotFound) ||
		errors.Is(err, cases.ErrNotFound) ||
		errors.Is(err, document.ErrNotFound) ||
		errors.Is(err, notification.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.As(err, &conflictErr) || errors.As(err, &transErr):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.As(err, &timeErr) || errors.Is(err, event.ErrInvalidInterval):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Unprocessable input", err.Error())
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error",
			"An unexpected error occurred. Please try again later.")
	}
}
