package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupay/salaryboard/internal/response"
	"github.com/edupay/salaryboard/internal/service"
	"github.com/edupay/salaryboard/internal/validator"
)

// DistrictHandler serves the filtered district table.
type DistrictHandler struct {
	districtService *service.DistrictService
}

// NewDistrictHandler creates a new DistrictHandler.
func NewDistrictHandler(districtService *service.DistrictService) *DistrictHandler {
	return &DistrictHandler{districtService: districtService}
}

// districtListQuery extends the shared filter with pagination.
type districtListQuery struct {
	FilterQuery
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=200"`
}

// ListDistricts godoc
// GET /api/v1/districts
// Returns one page of district rows matching the filter, with derived
// salary growth columns.
func (h *DistrictHandler) ListDistricts(c *gin.Context) {
	query := districtListQuery{Page: 1, PerPage: 20}
	if fields := validator.BindQuery(c, &query); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if query.Page == 0 {
		query.Page = 1
	}
	if query.PerPage == 0 {
		query.PerPage = 20
	}

	rows, total := h.districtService.List(query.ToFilter(), query.Page, query.PerPage)

	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"districts": rows},
		response.NewPagination(query.Page, query.PerPage, total),
	)
}
