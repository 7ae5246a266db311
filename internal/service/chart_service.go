package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/edupay/salaryboard/internal/model"
)

// ErrUnknownChart is returned when a chart name is not one of ChartNames.
var ErrUnknownChart = errors.New("unknown chart")

// ErrEmptySelection is returned when the filter matches no districts.
var ErrEmptySelection = errors.New("no districts match the filter")

// ChartNames lists the charts the PNG endpoint can render.
var ChartNames = []string{
	"salary-comparison",
	"salary-range",
	"budget-share",
	"years-to-top",
	"progression",
}

const (
	chartWidth  = 1024
	chartHeight = 420
)

// ChartService renders dashboard charts server-side as PNG, for embedding
// and report export. The browser page draws its own interactive charts.
type ChartService struct {
	dashboard *DashboardService
}

// NewChartService creates a new ChartService.
func NewChartService(dashboard *DashboardService) *ChartService {
	return &ChartService{dashboard: dashboard}
}

// Render draws the named chart for the given filter and returns PNG bytes.
func (s *ChartService) Render(name string, f model.DatasetFilter) ([]byte, error) {
	data := s.dashboard.GetDashboardData(f)
	if data.TotalDistricts == 0 {
		return nil, ErrEmptySelection
	}

	switch name {
	case "salary-comparison":
		return renderComparison(data.StateAggregates)
	case "salary-range":
		return renderBars("Salary Growth Potential by State ($)", data.StateAggregates,
			func(a model.StateAggregate) float64 { return a.SalaryRange })
	case "budget-share":
		return renderBars("Teacher Salary Budget Share by State (%)", data.StateAggregates,
			func(a model.StateAggregate) float64 { return a.AvgBudgetSharePct })
	case "years-to-top":
		return renderBars("Years to Reach Top Salary by State", data.StateAggregates,
			func(a model.StateAggregate) float64 { return a.AvgYearsToTop })
	case "progression":
		return renderProgression(data.Progression)
	default:
		return nil, ErrUnknownChart
	}
}

// renderBars draws one bar per state, sorted by the aggregate ordering
// (average starting salary ascending). The y-range is set explicitly:
// go-chart refuses to infer a range from a single bar.
func renderBars(title string, aggregates []model.StateAggregate, value func(model.StateAggregate) float64) ([]byte, error) {
	bars := make([]chart.Value, 0, len(aggregates))
	maxValue := 0.0
	for _, agg := range aggregates {
		v := value(agg)
		if v > maxValue {
			maxValue = v
		}
		bars = append(bars, chart.Value{
			Label: agg.State,
			Value: v,
		})
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	bc := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: barWidth(len(bars)),
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// renderComparison plots average starting and top salary across states as
// two series over the state index, with state names as ticks. Both axis
// ranges are set explicitly so a single-state selection still renders.
func renderComparison(aggregates []model.StateAggregate) ([]byte, error) {
	xs := make([]float64, len(aggregates))
	starting := make([]float64, len(aggregates))
	top := make([]float64, len(aggregates))
	ticks := make([]chart.Tick, len(aggregates))
	maxTop := 1.0
	for i, agg := range aggregates {
		xs[i] = float64(i)
		starting[i] = agg.AvgStartingSalary
		top[i] = agg.AvgTopSalary
		if agg.AvgTopSalary > maxTop {
			maxTop = agg.AvgTopSalary
		}
		ticks[i] = chart.Tick{Value: float64(i), Label: agg.State}
	}

	ch := chart.Chart{
		Title:  "Starting vs Top Salary by State ($)",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(aggregates)) - 0.5},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxTop * 1.1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Starting Salary", XValues: xs, YValues: starting},
			chart.ContinuousSeries{Name: "Top Salary", XValues: xs, YValues: top},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render salary comparison: %w", err)
	}
	return buf.Bytes(), nil
}

func renderProgression(series []ProgressionSeries) ([]byte, error) {
	chartSeries := make([]chart.Series, 0, len(series))
	for _, s := range series {
		xs := make([]float64, len(s.Years))
		for i, y := range s.Years {
			xs[i] = float64(y)
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.State,
			XValues: xs,
			YValues: s.Salaries,
		})
	}

	ch := chart.Chart{
		Title:  "Salary Progression Over Career ($)",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis:  chart.XAxis{Name: "Years of Experience"},
		Series: chartSeries,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render progression: %w", err)
	}
	return buf.Bytes(), nil
}

func barWidth(bars int) int {
	if bars == 0 {
		return 20
	}
	w := (chartWidth - 100) / bars
	if w < 8 {
		w = 8
	}
	if w > 60 {
		w = 60
	}
	return w
}
