package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/edupay/salaryboard/internal/config"
	"github.com/edupay/salaryboard/internal/dataset"
	"github.com/edupay/salaryboard/internal/generator"
	"github.com/edupay/salaryboard/internal/logger"
	"github.com/edupay/salaryboard/internal/model"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	seed := flag.Int64("seed", time.Now().UnixNano(), "run seed (default: time-based, non-reproducible)")
	outDir := flag.String("out", cfg.DataDir, "output directory")
	flag.Parse()

	fmt.Println("=== Generating Teacher Salary Sample Data ===")

	gen := generator.New(*seed)
	records := gen.AllDistricts()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	path := filepath.Join(*outDir, dataset.GeneralFilename)
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create dataset file")
	}
	defer f.Close()

	if err := dataset.WriteRecords(f, records, false); err != nil {
		log.Fatal().Err(err).Msg("Failed to write dataset")
	}

	states := make(map[string]bool)
	for _, r := range records {
		states[r.State] = true
	}

	fmt.Printf("Generated %d district records across %d states\n", len(records), len(states))
	fmt.Printf("\nData saved to: %s\n", path)
	printSummary(records)
}

func printSummary(records []model.DistrictRecord) {
	minStart, maxStart := records[0].StartingSalary, records[0].StartingSalary
	minTop, maxTop := records[0].TopSalary, records[0].TopSalary
	years := make([]int, 0, len(records))

	for _, r := range records {
		if r.StartingSalary < minStart {
			minStart = r.StartingSalary
		}
		if r.StartingSalary > maxStart {
			maxStart = r.StartingSalary
		}
		if r.TopSalary < minTop {
			minTop = r.TopSalary
		}
		if r.TopSalary > maxTop {
			maxTop = r.TopSalary
		}
		years = append(years, r.YearsToTop)
	}
	sort.Ints(years)

	fmt.Println("\nSample statistics:")
	fmt.Printf("  Starting salary range: $%d - $%d\n", minStart, maxStart)
	fmt.Printf("  Top salary range: $%d - $%d\n", minTop, maxTop)
	fmt.Printf("  Median years to top: %d\n", years[len(years)/2])
}
