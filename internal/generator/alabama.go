package generator

// Curated Alabama district data for the 2024–2025 school year, compiled from
// official salary schedules and third-party aggregators (Dec 2024).

import (
	"github.com/edupay/salaryboard/internal/model"
)

// alabamaDistrict holds the hand-entered constants for one district.
type alabamaDistrict struct {
	name           string
	startingSalary int
	avgSalary      int
	topSalary      int
	yearsToTop     int
	budgetShare    float64
	numTeachers    int
	ratio          float64
	region         model.Region
	source         string
}

var alabamaDistricts = []alabamaDistrict{
	{"Baldwin County Schools", 47000, 54000, 72000, 25, 52.0, 1650, 16.5, "Coastal",
		"Baldwin County Board of Education salary schedule"},
	{"Mobile County Public Schools", 46500, 52000, 70000, 25, 51.0, 3200, 17.2, "Coastal",
		"Mobile County Public Schools (MCPSS) salary schedule"},
	{"Saraland City Schools", 46000, 49167, 68000, 23, 48.5, 185, 15.8, "Coastal",
		"Salary.com aggregated data"},
	{"Orange Beach City Schools", 45500, 48514, 66000, 22, 47.0, 95, 14.2, "Coastal",
		"Salary.com aggregated data"},
	{"Gulf Shores City Schools", 45800, 48541, 67000, 22, 47.5, 125, 14.8, "Coastal",
		"Gulf Shores City Schools 2024-2025 salary schedule"},
	{"Birmingham City Schools", 48000, 54922, 75000, 25, 53.0, 2380, 18.5, "Central",
		"Birmingham City Schools 2024-2025 salary schedule, Indeed/Glassdoor data"},
	{"Montgomery Public Schools", 45000, 47543, 65000, 24, 49.0, 2100, 17.8, "Central",
		"Montgomery Public Schools 2024-2025 salary schedule, Salary.com data"},
	{"Hoover City Schools", 49500, 56583, 78000, 24, 54.0, 1450, 16.2, "Central",
		"Glassdoor aggregated data, Teacher.org"},
	{"Huntsville City Schools", 47500, 54989, 84716, 26, 52.5, 2850, 16.8, "Northern",
		"Huntsville City Schools FY2025 salary schedule, Indeed/Glassdoor data"},
}

// AlabamaDistricts returns the curated Alabama district records with the
// derived fields (salary range, average raise) computed.
func AlabamaDistricts() []model.DistrictRecord {
	records := make([]model.DistrictRecord, 0, len(alabamaDistricts))
	for _, d := range alabamaDistricts {
		records = append(records, model.DistrictRecord{
			State:               "Alabama",
			Region:              d.region,
			District:            d.name,
			StartingSalary:      d.startingSalary,
			MedianSalary:        d.avgSalary,
			TopSalary:           d.topSalary,
			YearsToTop:          d.yearsToTop,
			BudgetSharePct:      d.budgetShare,
			NumTeachers:         d.numTeachers,
			StudentTeacherRatio: d.ratio,
			AvgRaisePct:         AvgRaisePct(d.startingSalary, d.topSalary, d.yearsToTop),
			SalaryRange:         d.topSalary - d.startingSalary,
			DataSource:          d.source,
		})
	}
	return records
}

// ScheduleYears are the experience milestones included in the detailed
// Alabama export.
var ScheduleYears = []int{0, 5, 10, 15, 20, 25, 30}

// Milestone is a salary sampled at an experience milestone.
type Milestone struct {
	Year   int
	Salary int
}

// SalarySchedule samples a district's salary at the ScheduleYears milestones
// using linear progression, clamped at the top salary once yearsToTop is
// reached.
func SalarySchedule(starting, top, yearsToTop int) []Milestone {
	schedule := make([]Milestone, 0, len(ScheduleYears))
	for _, year := range ScheduleYears {
		salary := top
		if year <= yearsToTop && yearsToTop > 0 {
			salary = starting + int(float64(top-starting)*float64(year)/float64(yearsToTop))
		}
		schedule = append(schedule, Milestone{Year: year, Salary: salary})
	}
	return schedule
}
