package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edupay/salaryboard/internal/response"
	"github.com/edupay/salaryboard/internal/service"
	"github.com/edupay/salaryboard/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams the filtered district table as an XLSX download.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportDistricts godoc
// GET /api/v1/export
// Builds an XLSX workbook of the filtered district rows and streams it as
// an attachment.
func (h *ExportHandler) ExportDistricts(c *gin.Context) {
	var query FilterQuery
	if fields := validator.BindQuery(c, &query); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	file, err := h.exportService.Workbook(query.ToFilter())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrExportFailed)
		return
	}

	filename := fmt.Sprintf("teacher_salaries_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := file.Write(c.Writer); err != nil {
		// Headers are already gone; nothing to do but record it.
		_ = c.Error(err)
	}
}
