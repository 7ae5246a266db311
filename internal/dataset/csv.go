package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/edupay/salaryboard/internal/model"
)

// Well-known dataset filenames, shared by the generator CLIs and the server.
const (
	GeneralFilename         = "teacher_salary_data.csv"
	AlabamaFilename         = "alabama_teacher_salaries.csv"
	AlabamaDetailedFilename = "alabama_teacher_salaries_detailed.csv"
)

// baseHeader is the column set every dataset file carries.
var baseHeader = []string{
	"state", "region", "district",
	"starting_salary", "median_salary", "top_salary",
	"years_to_top", "budget_share_pct", "num_teachers",
	"student_teacher_ratio", "avg_raise_pct",
}

// curatedHeader extends baseHeader with the columns only curated files have.
var curatedHeader = append(append([]string{}, baseHeader...), "salary_range", "data_source")

// WriteRecords writes district records as CSV. Curated files carry the two
// extra attribution columns.
func WriteRecords(w io.Writer, records []model.DistrictRecord, curated bool) error {
	cw := csv.NewWriter(w)

	header := baseHeader
	if curated {
		header = curatedHeader
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
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
		}
		if curated {
			row = append(row, strconv.Itoa(r.SalaryRange), r.DataSource)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.District, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadRecords parses a dataset CSV into district records. Columns are mapped
// by header name, so the base and curated layouts (and column reordering)
// are both accepted. Unknown columns are skipped.
func ReadRecords(r io.Reader) ([]model.DistrictRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range baseHeader {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var records []model.DistrictRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		line++

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, cols map[string]int) (model.DistrictRecord, error) {
	var rec model.DistrictRecord
	var err error

	field := func(name string) string {
		if i, ok := cols[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	rec.State = field("state")
	rec.Region = model.Region(field("region"))
	rec.District = field("district")

	intFields := []struct {
		name string
		dst  *int
	}{
		{"starting_salary", &rec.StartingSalary},
		{"median_salary", &rec.MedianSalary},
		{"top_salary", &rec.TopSalary},
		{"years_to_top", &rec.YearsToTop},
		{"num_teachers", &rec.NumTeachers},
	}
	for _, f := range intFields {
		if *f.dst, err = strconv.Atoi(field(f.name)); err != nil {
			return rec, fmt.Errorf("column %s: %w", f.name, err)
		}
	}

	floatFields := []struct {
		name string
		dst  *float64
	}{
		{"budget_share_pct", &rec.BudgetSharePct},
		{"student_teacher_ratio", &rec.StudentTeacherRatio},
		{"avg_raise_pct", &rec.AvgRaisePct},
	}
	for _, f := range floatFields {
		if *f.dst, err = strconv.ParseFloat(field(f.name), 64); err != nil {
			return rec, fmt.Errorf("column %s: %w", f.name, err)
		}
	}

	// Curated-only columns; absent or blank in generated files.
	if v := field("salary_range"); v != "" {
		if rec.SalaryRange, err = strconv.Atoi(v); err != nil {
			return rec, fmt.Errorf("column salary_range: %w", err)
		}
	}
	rec.DataSource = field("data_source")

	return rec, nil
}

// formatFloat renders floats without trailing zero noise, matching the
// generator's 1–2 decimal rounding.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
