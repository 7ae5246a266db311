package generator

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/edupay/salaryboard/internal/model"
)

// Generation constants shared by all states.
const (
	DistrictsPerState = 5

	minYearsToTop = 15
	maxYearsToTop = 25

	minBudgetSharePct = 40.0
	maxBudgetSharePct = 60.0

	minTeachers = 50
	maxTeachers = 999

	minStudentTeacherRatio = 12.0
	maxStudentTeacherRatio = 22.0

	// Median lands 60–70% of the way between starting and top.
	minMedianPosition = 0.6
	maxMedianPosition = 0.7
)

// Generator produces synthetic district salary records from the hand-coded
// per-state bounds. Each state draws from its own sub-seed so adding or
// removing states does not reshuffle the others.
type Generator struct {
	seed int64
}

// New creates a Generator for the given run seed.
func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

// AllDistricts generates DistrictsPerState records for every covered state,
// in alphabetical state order.
func (g *Generator) AllDistricts() []model.DistrictRecord {
	records := make([]model.DistrictRecord, 0, len(StateSalaryBounds)*DistrictsPerState)
	for _, state := range StateNames() {
		records = append(records, g.StateDistricts(state, StateSalaryBounds[state])...)
	}
	return records
}

// StateDistricts generates the synthetic districts for a single state.
// Every numeric field is drawn uniformly within its configured bounds.
func (g *Generator) StateDistricts(state string, bounds StateBounds) []model.DistrictRecord {
	rng := rand.New(rand.NewSource(stateSeed(g.seed, state)))

	records := make([]model.DistrictRecord, 0, DistrictsPerState)
	for i := 0; i < DistrictsPerState; i++ {
		starting := intBetween(rng, bounds.BaseMin, bounds.BaseMax)
		top := intBetween(rng, bounds.TopMin, bounds.TopMax)
		years := intBetween(rng, minYearsToTop, maxYearsToTop)
		median := starting + int(float64(top-starting)*floatBetween(rng, minMedianPosition, maxMedianPosition))

		records = append(records, model.DistrictRecord{
			State:               state,
			Region:              bounds.Region,
			District:            fmt.Sprintf("%s District %d", state, i+1),
			StartingSalary:      starting,
			MedianSalary:        median,
			TopSalary:           top,
			YearsToTop:          years,
			BudgetSharePct:      round1(floatBetween(rng, minBudgetSharePct, maxBudgetSharePct)),
			NumTeachers:         intBetween(rng, minTeachers, maxTeachers),
			StudentTeacherRatio: round1(floatBetween(rng, minStudentTeacherRatio, maxStudentTeacherRatio)),
			AvgRaisePct:         AvgRaisePct(starting, top, years),
		})
	}
	return records
}

// AvgRaisePct is the compound annual raise that takes a salary from
// starting to top over yearsToTop years, in percent, rounded to 2 decimals.
func AvgRaisePct(starting, top, yearsToTop int) float64 {
	if starting <= 0 || yearsToTop <= 0 {
		return 0
	}
	raise := math.Pow(float64(top)/float64(starting), 1/float64(yearsToTop)) - 1
	return round2(raise * 100)
}

// stateSeed derives a per-state sub-seed by folding the state name into the
// run seed, so each state's districts are independent of iteration order.
func stateSeed(seed int64, state string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(state))
	return seed ^ int64(h.Sum64())
}

// intBetween draws uniformly from [min, max].
func intBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// floatBetween draws uniformly from [min, max).
func floatBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
