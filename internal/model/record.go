package model

// Region is one of the four U.S. census groupings used to bucket states.
// Curated district datasets may carry their own sub-region labels
// (e.g. "Coastal" for Alabama), so the type is open-ended on purpose.
type Region string

const (
	RegionNortheast Region = "Northeast"
	RegionSouth     Region = "South"
	RegionMidwest   Region = "Midwest"
	RegionWest      Region = "West"
)

// DistrictRecord is one row of the salary dataset. Generated and curated
// rows share the same shape; SalaryRange and DataSource are only populated
// for curated rows.
type DistrictRecord struct {
	State               string  `json:"state"`
	Region              Region  `json:"region"`
	District            string  `json:"district"`
	StartingSalary      int     `json:"starting_salary"`
	MedianSalary        int     `json:"median_salary"`
	TopSalary           int     `json:"top_salary"`
	YearsToTop          int     `json:"years_to_top"`
	BudgetSharePct      float64 `json:"budget_share_pct"`
	NumTeachers         int     `json:"num_teachers"`
	StudentTeacherRatio float64 `json:"student_teacher_ratio"`
	AvgRaisePct         float64 `json:"avg_raise_pct"`
	SalaryRange         int     `json:"salary_range,omitempty"`
	DataSource          string  `json:"data_source,omitempty"`
}

// SalaryGrowth is the absolute spread between top and starting salary.
func (r DistrictRecord) SalaryGrowth() int {
	return r.TopSalary - r.StartingSalary
}

// GrowthPct is the relative spread, (top − starting) / starting, in percent.
func (r DistrictRecord) GrowthPct() float64 {
	if r.StartingSalary == 0 {
		return 0
	}
	return float64(r.TopSalary-r.StartingSalary) / float64(r.StartingSalary) * 100
}

// Curated reports whether the row came from a hand-entered dataset
// rather than the generator.
func (r DistrictRecord) Curated() bool {
	return r.DataSource != ""
}

// DatasetFilter selects district rows. Region and state constraints are
// AND-combined; states within the list are OR-combined. Zero value means
// no restriction.
type DatasetFilter struct {
	Region string
	States []string
}

// IsEmpty reports whether the filter places no restriction at all.
func (f DatasetFilter) IsEmpty() bool {
	return f.Region == "" && len(f.States) == 0
}

// StateAggregate holds per-state means of the district columns,
// with the region taken from the state's first district row.
type StateAggregate struct {
	State                  string  `json:"state"`
	Region                 Region  `json:"region"`
	Districts              int     `json:"districts"`
	AvgStartingSalary      float64 `json:"avg_starting_salary"`
	AvgMedianSalary        float64 `json:"avg_median_salary"`
	AvgTopSalary           float64 `json:"avg_top_salary"`
	AvgYearsToTop          float64 `json:"avg_years_to_top"`
	AvgBudgetSharePct      float64 `json:"avg_budget_share_pct"`
	AvgStudentTeacherRatio float64 `json:"avg_student_teacher_ratio"`
	AvgRaisePct            float64 `json:"avg_raise_pct"`
	SalaryRange            float64 `json:"salary_range"`
}
