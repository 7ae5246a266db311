package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/edupay/salaryboard/internal/model"
)

func sampleRecords() []model.DistrictRecord {
	return []model.DistrictRecord{
		{
			State: "Texas", Region: model.RegionSouth, District: "Texas District 1",
			StartingSalary: 45000, MedianSalary: 58000, TopSalary: 70000,
			YearsToTop: 20, BudgetSharePct: 51.5, NumTeachers: 320,
			StudentTeacherRatio: 16.4, AvgRaisePct: 2.23,
		},
		{
			State: "Iowa", Region: model.RegionMidwest, District: "Iowa District 2",
			StartingSalary: 40000, MedianSalary: 52000, TopSalary: 60000,
			YearsToTop: 18, BudgetSharePct: 44.0, NumTeachers: 150,
			StudentTeacherRatio: 14.1, AvgRaisePct: 2.28,
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records, false); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	loaded, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(loaded) != len(records) {
		t.Fatalf("got %d records, want %d", len(loaded), len(records))
	}
	for i := range records {
		if loaded[i] != records[i] {
			t.Errorf("record %d changed in round trip:\nwrote %+v\nread  %+v", i, records[i], loaded[i])
		}
	}
}

func TestCuratedRoundTripKeepsAttribution(t *testing.T) {
	records := sampleRecords()
	records[0].SalaryRange = 25000
	records[0].DataSource = "District salary schedule"

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records, true); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	loaded, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if loaded[0].DataSource != "District salary schedule" {
		t.Errorf("data source = %q, want attribution preserved", loaded[0].DataSource)
	}
	if loaded[0].SalaryRange != 25000 {
		t.Errorf("salary range = %d, want 25000", loaded[0].SalaryRange)
	}
	if loaded[1].Curated() {
		t.Errorf("row without source reported as curated")
	}
}

func TestReadSkipsUnknownColumns(t *testing.T) {
	csv := strings.Join([]string{
		"state,region,district,starting_salary,median_salary,top_salary,years_to_top,budget_share_pct,num_teachers,student_teacher_ratio,avg_raise_pct,mystery",
		"Ohio,Midwest,Ohio District 1,41000,50000,62000,19,47.3,210,15.2,2.2,whatever",
	}, "\n")

	records, err := ReadRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].State != "Ohio" || records[0].TopSalary != 62000 {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestReadRejectsMissingColumn(t *testing.T) {
	csv := "state,region,district\nOhio,Midwest,Ohio District 1"
	if _, err := ReadRecords(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing columns, got nil")
	}
}

func TestReadRejectsBadNumber(t *testing.T) {
	csv := strings.Join([]string{
		"state,region,district,starting_salary,median_salary,top_salary,years_to_top,budget_share_pct,num_teachers,student_teacher_ratio,avg_raise_pct",
		"Ohio,Midwest,Ohio District 1,not-a-number,50000,62000,19,47.3,210,15.2,2.2",
	}, "\n")

	_, err := ReadRecords(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "starting_salary") {
		t.Errorf("error should name the bad column, got: %v", err)
	}
}
