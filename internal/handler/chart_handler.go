package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupay/salaryboard/internal/response"
	"github.com/edupay/salaryboard/internal/service"
	"github.com/edupay/salaryboard/internal/validator"
)

// ChartHandler serves server-rendered PNG charts.
type ChartHandler struct {
	chartService *service.ChartService
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chartService *service.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// RenderChart godoc
// GET /api/v1/charts/:name
// Renders the named chart for the filter selection as a PNG image.
func (h *ChartHandler) RenderChart(c *gin.Context) {
	var query FilterQuery
	if fields := validator.BindQuery(c, &query); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	png, err := h.chartService.Render(c.Param("name"), query.ToFilter())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownChart):
			response.Fail(c, http.StatusNotFound, response.ErrUnknownChart)
		case errors.Is(err, service.ErrEmptySelection):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrEmptyResult)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
