package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/edupay/salaryboard/internal/model"
	"github.com/edupay/salaryboard/internal/repository"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderAllCharts(t *testing.T) {
	svc := NewChartService(NewDashboardService(fixtureRepo()))

	for _, name := range ChartNames {
		png, err := svc.Render(name, model.DatasetFilter{})
		if err != nil {
			t.Errorf("Render(%q): %v", name, err)
			continue
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Errorf("Render(%q): output is not a PNG", name)
		}
	}
}

func TestRenderUnknownChart(t *testing.T) {
	svc := NewChartService(NewDashboardService(fixtureRepo()))

	_, err := svc.Render("pie-of-doom", model.DatasetFilter{})
	if !errors.Is(err, ErrUnknownChart) {
		t.Fatalf("got %v, want ErrUnknownChart", err)
	}
}

func TestRenderSingleStateSelection(t *testing.T) {
	svc := NewChartService(NewDashboardService(fixtureRepo()))

	filters := map[string]model.DatasetFilter{
		"single state":    {States: []string{"Texas"}},
		"single district": {States: []string{"New York"}},
	}
	for label, f := range filters {
		for _, name := range ChartNames {
			png, err := svc.Render(name, f)
			if err != nil {
				t.Errorf("%s: Render(%q): %v", label, name, err)
				continue
			}
			if !bytes.HasPrefix(png, pngMagic) {
				t.Errorf("%s: Render(%q): output is not a PNG", label, name)
			}
		}
	}
}

func TestRenderEmptySelection(t *testing.T) {
	svc := NewChartService(NewDashboardService(fixtureRepo()))

	_, err := svc.Render("salary-range", model.DatasetFilter{States: []string{"Nowhere"}})
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("got %v, want ErrEmptySelection", err)
	}
}

func TestWorkbookContents(t *testing.T) {
	svc := NewExportService(NewDistrictService(fixtureRepo()))

	file, err := svc.Workbook(model.DatasetFilter{})
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	reopened, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer reopened.Close()

	rows, err := reopened.GetRows("Districts")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}

	// Header plus one row per fixture district.
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows[0][0] != "State" || rows[0][2] != "District" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	// Fixture has no curated rows, so no Data Source column.
	for _, cell := range rows[0] {
		if cell == "Data Source" {
			t.Errorf("Data Source column present without curated rows")
		}
	}
}

func TestWorkbookIncludesSourceForCuratedRows(t *testing.T) {
	repo := fixtureRepo()
	records := append(repo.All(),
		model.DistrictRecord{
			State: "Alabama", Region: "Coastal", District: "Baldwin County Schools",
			StartingSalary: 47000, MedianSalary: 54000, TopSalary: 72000,
			YearsToTop: 25, BudgetSharePct: 52, NumTeachers: 1650,
			StudentTeacherRatio: 16.5, AvgRaisePct: 1.72, SalaryRange: 25000,
			DataSource: "Baldwin County Board of Education salary schedule",
		})
	svc := NewExportService(NewDistrictService(repository.NewDatasetRepository(records)))

	file, err := svc.Workbook(model.DatasetFilter{})
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	reopened, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer reopened.Close()

	rows, err := reopened.GetRows("Districts")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	header := rows[0]
	if header[len(header)-1] != "Data Source" {
		t.Errorf("last header column = %q, want Data Source", header[len(header)-1])
	}
}
