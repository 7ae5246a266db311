package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/edupay/salaryboard/internal/model"
)

const exportSheet = "Districts"

// ExportService builds XLSX workbooks of the filtered district table.
type ExportService struct {
	districts *DistrictService
}

// NewExportService creates a new ExportService.
func NewExportService(districts *DistrictService) *ExportService {
	return &ExportService{districts: districts}
}

// Workbook builds an XLSX file containing every district row matching the
// filter. The Data Source column is included only when curated rows are in
// the selection, mirroring the dashboard table.
func (s *ExportService) Workbook(f model.DatasetFilter) (*excelize.File, error) {
	rows := s.districts.Export(f)

	withSource := false
	for _, r := range rows {
		if r.Curated() {
			withSource = true
			break
		}
	}

	headers := []string{
		"State", "Region", "District",
		"Starting Salary", "Median Salary", "Top Salary",
		"Years to Top", "Budget Share %", "Teachers",
		"Student:Teacher Ratio", "Avg Raise %", "Salary Growth", "Growth %",
	}
	if withSource {
		headers = append(headers, "Data Source")
	}

	file := excelize.NewFile()
	index, err := file.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header %q: %w", header, err)
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.State, string(r.Region), r.District,
			r.StartingSalary, r.MedianSalary, r.TopSalary,
			r.YearsToTop, r.BudgetSharePct, r.NumTeachers,
			r.StudentTeacherRatio, r.AvgRaisePct, r.SalaryGrowth, r.GrowthPct,
		}
		if withSource {
			values = append(values, r.DataSource)
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := file.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	return file, nil
}
