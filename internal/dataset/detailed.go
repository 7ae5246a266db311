package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/edupay/salaryboard/internal/generator"
	"github.com/edupay/salaryboard/internal/model"
)

// WriteDetailed writes the curated layout plus one year_N column per
// schedule milestone. schedules must be parallel to records.
func WriteDetailed(w io.Writer, records []model.DistrictRecord, schedules [][]generator.Milestone) error {
	if len(records) != len(schedules) {
		return fmt.Errorf("records/schedules length mismatch: %d vs %d", len(records), len(schedules))
	}

	cw := csv.NewWriter(w)

	header := append([]string{}, curatedHeader...)
	for _, year := range generator.ScheduleYears {
		header = append(header, fmt.Sprintf("year_%d", year))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		row := []string{
			r.State,
			string(r.Region),
			r.District,
			strconv.Itoa(r.StartingSalary),
			strconv.Itoa(r.MedianSalary),
			strconv.Itoa(r.TopSalary),
			strconv.Itoa(r.YearsToTop),
			formatFloat(r.BudgetSharePct),
			strconv.Itoa(r.NumTeachers),
			formatFloat(r.StudentTeacherRatio),
			formatFloat(r.AvgRaisePct),
			strconv.Itoa(r.SalaryRange),
			r.DataSource,
		}
		for _, m := range schedules[i] {
			row = append(row, strconv.Itoa(m.Salary))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.District, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
