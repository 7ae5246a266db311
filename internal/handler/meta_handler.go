package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edupay/salaryboard/internal/response"
	"github.com/edupay/salaryboard/internal/service"
)

// MetaHandler serves the dropdown option lists.
type MetaHandler struct {
	dashboardService *service.DashboardService
}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler(dashboardService *service.DashboardService) *MetaHandler {
	return &MetaHandler{dashboardService: dashboardService}
}

// ListRegions godoc
// GET /api/v1/meta/regions
// Lists the distinct region labels present in the dataset.
func (h *MetaHandler) ListRegions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"regions": h.dashboardService.Regions()})
}

// ListStates godoc
// GET /api/v1/meta/states?region=
// Lists the states present, optionally restricted to a region so the state
// dropdown cascades from the region dropdown.
func (h *MetaHandler) ListStates(c *gin.Context) {
	region := c.Query("region")
	if strings.EqualFold(region, filterAll) {
		region = ""
	}
	response.Success(c, http.StatusOK, gin.H{"states": h.dashboardService.States(region)})
}
