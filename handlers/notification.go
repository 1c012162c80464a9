package handlers

import (
	"net/http"

	"lawyerup/services/notification"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns the caller's notifications, newest first.
func ListNotifications(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		items, err := svc.ListForUser(c.Request.Context(), usr.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// MarkNotificationRead flags a notification as read for the caller.
func MarkNotificationRead(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		if err := svc.MarkRead(c.Request.Context(), c.Param("id"), usr.ID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	}
}
