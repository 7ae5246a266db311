package service

import (
	"sort"

	"github.com/edupay/salaryboard/internal/model"
	"github.com/edupay/salaryboard/internal/repository"
)

// progressionStates caps how many salary progression lines the dashboard
// draws; more than that is unreadable.
const progressionStates = 10

// Metrics are the dashboard stat cards, averaged over the filtered rows.
type Metrics struct {
	AvgStartingSalary float64 `json:"avg_starting_salary"`
	AvgTopSalary      float64 `json:"avg_top_salary"`
	AvgYearsToTop     float64 `json:"avg_years_to_top"`
	AvgBudgetSharePct float64 `json:"avg_budget_share_pct"`
}

// ProgressionSeries is one state's simulated career salary curve:
// linear interpolation from average starting to average top salary.
type ProgressionSeries struct {
	State    string    `json:"state"`
	Years    []int     `json:"years"`
	Salaries []float64 `json:"salaries"`
}

// DashboardData consolidates everything the dashboard page needs
// for one filter selection.
type DashboardData struct {
	Metrics         Metrics                `json:"metrics"`
	StateAggregates []model.StateAggregate `json:"state_aggregates"`
	Progression     []ProgressionSeries    `json:"progression"`
	TotalDistricts  int                    `json:"total_districts"`
	TotalStates     int                    `json:"total_states"`
}

// DashboardService computes the dashboard payload from the loaded dataset.
type DashboardService struct {
	repo *repository.DatasetRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DatasetRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboardData recomputes the full dashboard payload for a filter.
// An empty selection yields zeroed metrics rather than an error.
func (s *DashboardService) GetDashboardData(f model.DatasetFilter) *DashboardData {
	records := s.repo.Filter(f)
	aggregates := AggregateByState(records)

	return &DashboardData{
		Metrics:         computeMetrics(records),
		StateAggregates: aggregates,
		Progression:     buildProgression(aggregates),
		TotalDistricts:  len(records),
		TotalStates:     len(aggregates),
	}
}

// Regions returns the distinct region labels for the region dropdown.
func (s *DashboardService) Regions() []string {
	return s.repo.Regions()
}

// States returns the states for the state dropdown, cascading on region.
func (s *DashboardService) States(region string) []string {
	return s.repo.States(region)
}

// AggregateByState groups district rows by state, averages every numeric
// column, takes the region from the state's first row, and sorts the result
// by average starting salary ascending.
func AggregateByState(records []model.DistrictRecord) []model.StateAggregate {
	type accumulator struct {
		agg model.StateAggregate
	}

	byState := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, r := range records {
		acc, ok := byState[r.State]
		if !ok {
			acc = &accumulator{agg: model.StateAggregate{State: r.State, Region: r.Region}}
			byState[r.State] = acc
			order = append(order, r.State)
		}
		acc.agg.Districts++
		acc.agg.AvgStartingSalary += float64(r.StartingSalary)
		acc.agg.AvgMedianSalary += float64(r.MedianSalary)
		acc.agg.AvgTopSalary += float64(r.TopSalary)
		acc.agg.AvgYearsToTop += float64(r.YearsToTop)
		acc.agg.AvgBudgetSharePct += r.BudgetSharePct
		acc.agg.AvgStudentTeacherRatio += r.StudentTeacherRatio
		acc.agg.AvgRaisePct += r.AvgRaisePct
	}

	aggregates := make([]model.StateAggregate, 0, len(order))
	for _, state := range order {
		agg := byState[state].agg
		n := float64(agg.Districts)
		agg.AvgStartingSalary /= n
		agg.AvgMedianSalary /= n
		agg.AvgTopSalary /= n
		agg.AvgYearsToTop /= n
		agg.AvgBudgetSharePct /= n
		agg.AvgStudentTeacherRatio /= n
		agg.AvgRaisePct /= n
		agg.SalaryRange = agg.AvgTopSalary - agg.AvgStartingSalary
		aggregates = append(aggregates, agg)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].AvgStartingSalary < aggregates[j].AvgStartingSalary
	})
	return aggregates
}

func computeMetrics(records []model.DistrictRecord) Metrics {
	if len(records) == 0 {
		return Metrics{}
	}

	var m Metrics
	for _, r := range records {
		m.AvgStartingSalary += float64(r.StartingSalary)
		m.AvgTopSalary += float64(r.TopSalary)
		m.AvgYearsToTop += float64(r.YearsToTop)
		m.AvgBudgetSharePct += r.BudgetSharePct
	}
	n := float64(len(records))
	m.AvgStartingSalary /= n
	m.AvgTopSalary /= n
	m.AvgYearsToTop /= n
	m.AvgBudgetSharePct /= n
	return m
}

// buildProgression simulates year-by-year salaries for the first
// progressionStates entries of the aggregate ordering. The year axis is the
// truncated mean, but the slope divides by the full fractional mean, so a
// fractional-year state tops out just short of its average top salary.
func buildProgression(aggregates []model.StateAggregate) []ProgressionSeries {
	limit := progressionStates
	if len(aggregates) < limit {
		limit = len(aggregates)
	}

	series := make([]ProgressionSeries, 0, limit)
	for _, agg := range aggregates[:limit] {
		meanYears := agg.AvgYearsToTop
		if meanYears < 1 {
			meanYears = 1
		}
		lastYear := int(meanYears)

		years := make([]int, 0, lastYear+1)
		salaries := make([]float64, 0, lastYear+1)
		for year := 0; year <= lastYear; year++ {
			years = append(years, year)
			salaries = append(salaries,
				agg.AvgStartingSalary+(agg.AvgTopSalary-agg.AvgStartingSalary)*float64(year)/meanYears)
		}

		series = append(series, ProgressionSeries{
			State:    agg.State,
			Years:    years,
			Salaries: salaries,
		})
	}
	return series
}
