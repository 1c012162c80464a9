package handlers

import (
	"net/http"

	"lawyerup/models"
	"lawyerup/services/cases"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
)

// CreateCase opens a new case owned by the caller.
func CreateCase(svc cases.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.CaseCreate
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

// ListCases returns the caller's cases.
func ListCases(svc cases.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		items, err := svc.ListFor(c.Request.Context(), usr)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetCase returns one case under the caller's scope.
func GetCase(svc cases.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		item, err := svc.Get(c.Request.Context(), usr, c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// UpdateCase edits a case under the caller's scope.
func UpdateCase(svc cases.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.CaseCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		updated, err := svc.Update(c.Request.Context(), usr, c.Param("id"), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
