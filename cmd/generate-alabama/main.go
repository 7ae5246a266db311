package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/edupay/salaryboard/internal/config"
	"github.com/edupay/salaryboard/internal/dataset"
	"github.com/edupay/salaryboard/internal/generator"
	"github.com/edupay/salaryboard/internal/logger"
	"github.com/edupay/salaryboard/internal/model"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	outDir := flag.String("out", cfg.DataDir, "output directory")
	flag.Parse()

	fmt.Println("=== Writing Curated Alabama District Data ===")

	records := generator.AlabamaDistricts()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	basicPath := filepath.Join(*outDir, dataset.AlabamaFilename)
	if err := writeBasic(basicPath, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to write Alabama dataset")
	}

	fmt.Printf("Generated Alabama teacher salary data for %d districts\n", len(records))
	fmt.Printf("\nData saved to: %s\n", basicPath)
	fmt.Println("\nDistricts included:")
	for _, r := range records {
		fmt.Printf("  - %s\n", r.District)
	}

	detailedPath := filepath.Join(*outDir, dataset.AlabamaDetailedFilename)
	if err := writeDetailed(detailedPath, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to write detailed Alabama dataset")
	}
	fmt.Printf("\nDetailed data with salary schedules saved to: %s\n", detailedPath)

	printComparison(records)
}

func writeBasic(path string, records []model.DistrictRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dataset.WriteRecords(f, records, true)
}

func writeDetailed(path string, records []model.DistrictRecord) error {
	schedules := make([][]generator.Milestone, 0, len(records))
	for _, r := range records {
		schedules = append(schedules, generator.SalarySchedule(r.StartingSalary, r.TopSalary, r.YearsToTop))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dataset.WriteDetailed(f, records, schedules)
}

func printComparison(records []model.DistrictRecord) {
	sorted := append([]model.DistrictRecord{}, records...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartingSalary > sorted[j].StartingSalary
	})

	fmt.Println("\n" + divider())
	fmt.Println("ALABAMA TEACHER SALARY COMPARISON")
	fmt.Println(divider())
	fmt.Printf("\n%-35s %-12s %-12s %-12s %-6s\n", "District", "Starting", "Median", "Top", "Years")
	for _, r := range sorted {
		fmt.Printf("%-35s $%-11d $%-11d $%-11d %-6d\n",
			r.District, r.StartingSalary, r.MedianSalary, r.TopSalary, r.YearsToTop)
	}

	highestStart := maxBy(records, func(r model.DistrictRecord) int { return r.StartingSalary })
	lowestStart := maxBy(records, func(r model.DistrictRecord) int { return -r.StartingSalary })
	highestTop := maxBy(records, func(r model.DistrictRecord) int { return r.TopSalary })
	bestGrowth := maxBy(records, func(r model.DistrictRecord) int { return r.SalaryRange })
	fastest := maxBy(records, func(r model.DistrictRecord) int { return -r.YearsToTop })

	fmt.Println("\nKey findings:")
	fmt.Printf("  Highest starting salary: %s ($%d)\n", highestStart.District, highestStart.StartingSalary)
	fmt.Printf("  Lowest starting salary: %s ($%d)\n", lowestStart.District, lowestStart.StartingSalary)
	fmt.Printf("  Highest top salary: %s ($%d)\n", highestTop.District, highestTop.TopSalary)
	fmt.Printf("  Best salary growth: %s ($%d range)\n", bestGrowth.District, bestGrowth.SalaryRange)
	fmt.Printf("  Fastest to top: %s (%d years)\n", fastest.District, fastest.YearsToTop)
}

func maxBy(records []model.DistrictRecord, score func(model.DistrictRecord) int) model.DistrictRecord {
	best := records[0]
	for _, r := range records[1:] {
		if score(r) > score(best) {
			best = r
		}
	}
	return best
}

func divider() string {
	return "================================================================================"
}
