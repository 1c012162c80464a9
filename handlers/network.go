package handlers

import (
	"errors"
	"net/http"

	"lawyerup/models"
	"lawyerup/services/network"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
)

// NetworkFeed returns the caller's state feed, newest first.
func NetworkFeed(svc network.NetworkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		feed, err := svc.Feed(c.Request.Context(), usr)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, feed)
	}
}

// PostNetworkMessage publishes a message to the caller's state feed.
func PostNetworkMessage(svc network.NetworkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.NetworkMessageCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		posted, err := svc.Post(c.Request.Context(), usr, in)
		if err != nil {
			if errors.Is(err, network.ErrNoState) {
				utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, posted)
	}
}
