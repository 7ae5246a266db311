package generator

import (
	"sort"

	"github.com/edupay/salaryboard/internal/model"
)

// StateBounds are the hand-coded salary ranges a state's districts are
// drawn from (2024 estimates).
type StateBounds struct {
	BaseMin int
	BaseMax int
	TopMin  int
	TopMax  int
	Region  model.Region
}

// StateSalaryBounds maps each covered state to its salary bounds and region.
var StateSalaryBounds = map[string]StateBounds{
	"New York":       {58000, 95000, 95000, 130000, model.RegionNortheast},
	"California":     {50000, 85000, 90000, 125000, model.RegionWest},
	"Texas":          {44000, 60000, 62000, 85000, model.RegionSouth},
	"Florida":        {40000, 55000, 58000, 75000, model.RegionSouth},
	"Illinois":       {45000, 65000, 70000, 95000, model.RegionMidwest},
	"Pennsylvania":   {46000, 62000, 68000, 92000, model.RegionNortheast},
	"Ohio":           {40000, 58000, 62000, 82000, model.RegionMidwest},
	"Georgia":        {42000, 57000, 60000, 78000, model.RegionSouth},
	"North Carolina": {38000, 52000, 55000, 72000, model.RegionSouth},
	"Michigan":       {42000, 58000, 63000, 84000, model.RegionMidwest},
	"Massachusetts":  {50000, 75000, 85000, 115000, model.RegionNortheast},
	"New Jersey":     {52000, 78000, 88000, 120000, model.RegionNortheast},
	"Virginia":       {42000, 58000, 62000, 80000, model.RegionSouth},
	"Washington":     {48000, 68000, 75000, 98000, model.RegionWest},
	"Arizona":        {40000, 54000, 58000, 72000, model.RegionWest},
	"Tennessee":      {40000, 54000, 58000, 74000, model.RegionSouth},
	"Indiana":        {40000, 55000, 60000, 76000, model.RegionMidwest},
	"Missouri":       {38000, 52000, 56000, 71000, model.RegionMidwest},
	"Maryland":       {50000, 68000, 75000, 100000, model.RegionSouth},
	"Wisconsin":      {42000, 57000, 62000, 80000, model.RegionMidwest},
	"Minnesota":      {44000, 60000, 68000, 88000, model.RegionMidwest},
	"Colorado":       {42000, 58000, 65000, 82000, model.RegionWest},
	"Alabama":        {40000, 52000, 56000, 68000, model.RegionSouth},
	"South Carolina": {38000, 50000, 54000, 68000, model.RegionSouth},
	"Louisiana":      {42000, 54000, 58000, 70000, model.RegionSouth},
	"Kentucky":       {40000, 52000, 56000, 70000, model.RegionSouth},
	"Oregon":         {44000, 60000, 68000, 88000, model.RegionWest},
	"Oklahoma":       {36000, 48000, 52000, 62000, model.RegionSouth},
	"Connecticut":    {48000, 72000, 82000, 110000, model.RegionNortheast},
	"Iowa":           {38000, 52000, 58000, 74000, model.RegionMidwest},
}

// StateNames returns the covered states in alphabetical order so
// generation output is stable.
func StateNames() []string {
	names := make([]string, 0, len(StateSalaryBounds))
	for name := range StateSalaryBounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
