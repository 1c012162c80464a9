package handlers

import (
	"net/http"

	"lawyerup/services/dashboard"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
)

// LawyerDashboard returns practice summary stats for the acting lawyer.
func LawyerDashboard(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}
		if !usr.IsLawyer() {
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "lawyer dashboard requires a lawyer account")
			return
		}

		data, err := svc.ForLawyer(c.Request.Context(), usr)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// ClientDashboard returns summary stats for the acting client.
func ClientDashboard(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := currentUser(c)
		if !ok {
			return
		}
		if usr.IsLawyer() {
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "client dashboard requires a client account")
			return
		}

		data, err := svc.ForClient(c.Request.Context(), usr)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
