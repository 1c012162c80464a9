package handlers

import (
	"net/http"

	"lawyerup/models"
	"lawyerup/services/booking"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking handles an authenticated client's consultation request.
func CreateBooking(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.BookingCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		created, err := svc.Create(c.Request.Context(), usr, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// CreateGuestBooking handles the unauthenticated intake path.
func CreateGuestBooking(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.GuestBookingCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		id, err := svc.CreateGuest(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"booking_id": id, "status": "success"})
	}
}

// ListBookings returns the caller's bookings, role determining the side.
func ListBookings(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		bookings, err := svc.ListFor(c.Request.Context(), usr)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// UpdateBookingStatus lets the owning lawyer move a booking through its
// lifecycle.
func UpdateBookingStatus(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.BookingStatusUpdate
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		if err := svc.UpdateStatus(c.Request.Context(), usr, c.Param("id"), in.Status); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
	}
}

// RescheduleBooking moves a booking to a new slot.
func RescheduleBooking(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.BookingReschedule
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		if err := svc.Reschedule(c.Request.Context(), usr, c.Param("id"), in.Date, in.Time); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking rescheduled"})
	}
}

// CancelBooking cancels a booking on behalf of either party.
func CancelBooking(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.BookingCancel
		if err := c.ShouldBindJSON(&in); err != nil && err.Error() != "EOF" {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		if err := svc.Cancel(c.Request.Context(), usr, c.Param("id"), in.Reason); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
	}
}
