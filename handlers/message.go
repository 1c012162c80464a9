package handlers

import (
	"net/http"

	"lawyerup/models"
	"lawyerup/services/message"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
)

// SendMessage stores a message from the caller to the receiver.
func SendMessage(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.MessageCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		sent, err := svc.Send(c.Request.Context(), usr, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sent)
	}
}

// GetConversation returns the caller's exchange with another user.
func GetConversation(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		msgs, err := svc.Conversation(c.Request.Context(), usr, c.Param("userId"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

// RecentConversations summarizes the caller's latest exchange per counterpart.
func RecentConversations(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		convos, err := svc.Recents(c.Request.Context(), usr)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, convos)
	}
}
