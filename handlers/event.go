package handlers

import (
	"net/http"

	"lawyerup/models"
	"lawyerup/services/event"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
)

// CreateEvent registers a calendar block for the acting lawyer.
func CreateEvent(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.EventCreate
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

// ListEvents returns the caller's calendar blocks.
func ListEvents(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		events, err := svc.ListFor(c.Request.Context(), usr)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// DeleteEvent removes one of the caller's calendar blocks.
func DeleteEvent(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), usr, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
	}
}
