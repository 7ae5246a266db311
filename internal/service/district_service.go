package service

import (
	"github.com/edupay/salaryboard/internal/model"
	"github.com/edupay/salaryboard/internal/repository"
)

// DistrictRow is a district record plus the derived columns computed at
// read time for the table view.
type DistrictRow struct {
	model.DistrictRecord
	SalaryGrowth int     `json:"salary_growth"`
	GrowthPct    float64 `json:"growth_pct"`
}

// DistrictService serves the filtered district table.
type DistrictService struct {
	repo *repository.DatasetRepository
}

// NewDistrictService creates a new DistrictService.
func NewDistrictService(repo *repository.DatasetRepository) *DistrictService {
	return &DistrictService{repo: repo}
}

// List returns one page of filtered district rows and the total match count.
// page is 1-based; perPage must be positive.
func (s *DistrictService) List(f model.DatasetFilter, page, perPage int) ([]DistrictRow, int) {
	records := s.repo.Filter(f)
	total := len(records)

	start := (page - 1) * perPage
	if start >= total {
		return []DistrictRow{}, total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	rows := make([]DistrictRow, 0, end-start)
	for _, r := range records[start:end] {
		rows = append(rows, DistrictRow{
			DistrictRecord: r,
			SalaryGrowth:   r.SalaryGrowth(),
			GrowthPct:      r.GrowthPct(),
		})
	}
	return rows, total
}

// Export returns every filtered row with derived columns, for the
// XLSX export.
func (s *DistrictService) Export(f model.DatasetFilter) []DistrictRow {
	records := s.repo.Filter(f)
	rows := make([]DistrictRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, DistrictRow{
			DistrictRecord: r,
			SalaryGrowth:   r.SalaryGrowth(),
			GrowthPct:      r.GrowthPct(),
		})
	}
	return rows
}
