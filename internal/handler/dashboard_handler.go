package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupay/salaryboard/internal/response"
	"github.com/edupay/salaryboard/internal/service"
	"github.com/edupay/salaryboard/internal/validator"
)

// DashboardHandler serves the aggregated dashboard payload.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// GET /api/v1/dashboard
// Returns metric cards, per-state aggregates and progression series for the
// selected region/state filters.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var query FilterQuery
	if fields := validator.BindQuery(c, &query); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	data := h.dashboardService.GetDashboardData(query.ToFilter())
	response.Success(c, http.StatusOK, data)
}
