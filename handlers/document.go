package handlers

import (
	"net/http"

	"lawyerup/models"
	"lawyerup/services/document"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
)

// CreateDocument registers a document record owned by the caller.
func CreateDocument(svc document.DocumentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.DocumentCreate
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

// ListDocuments returns documents visible to the caller, optionally
// filtered by case.
func ListDocuments(svc document.DocumentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		items, err := svc.ListFor(c.Request.Context(), usr, c.Query("case_id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ShareDocument grants another user read access and notifies them.
func ShareDocument(svc document.DocumentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.DocumentShare
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		if err := svc.Share(c.Request.Context(), usr, c.Param("id"), in.UserID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Document shared"})
	}
}
