package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edupay/salaryboard/internal/dataset"
	"github.com/edupay/salaryboard/internal/model"
)

// DatasetRepository is the read-only in-memory district table. It is loaded
// once at startup; every query is a full scan, which is fine at tens of rows.
type DatasetRepository struct {
	records []model.DistrictRecord
}

// NewDatasetRepository wraps an already-loaded record slice (used by tests
// and by the loader below).
func NewDatasetRepository(records []model.DistrictRecord) *DatasetRepository {
	return &DatasetRepository{records: records}
}

// LoadDataset reads the generated dataset from dataDir and, when present,
// replaces the generated Alabama rows with the curated Alabama file.
// A missing generated dataset is an error the caller should treat as fatal.
func LoadDataset(dataDir string, log zerolog.Logger) (*DatasetRepository, error) {
	general, err := readFile(filepath.Join(dataDir, dataset.GeneralFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset %s not found in %s: run generate-data first", dataset.GeneralFilename, dataDir)
		}
		return nil, fmt.Errorf("load %s: %w", dataset.GeneralFilename, err)
	}

	curated, err := readFile(filepath.Join(dataDir, dataset.AlabamaFilename))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", dataset.AlabamaFilename, err)
		}
		log.Info().Msg("Alabama district data not found, run generate-alabama to include it")
		return NewDatasetRepository(general), nil
	}

	merged := MergeCurated(general, curated)
	log.Info().
		Int("districts", len(merged)).
		Int("curated", len(curated)).
		Msg("Loaded dataset with curated Alabama districts")

	return NewDatasetRepository(merged), nil
}

// MergeCurated drops the generated rows for every state present in the
// curated set and appends the curated rows instead.
func MergeCurated(general, curated []model.DistrictRecord) []model.DistrictRecord {
	replaced := make(map[string]bool, 1)
	for _, r := range curated {
		replaced[r.State] = true
	}

	merged := make([]model.DistrictRecord, 0, len(general)+len(curated))
	for _, r := range general {
		if !replaced[r.State] {
			merged = append(merged, r)
		}
	}
	return append(merged, curated...)
}

func readFile(path string) ([]model.DistrictRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadRecords(f)
}

// Len returns the number of loaded district rows.
func (r *DatasetRepository) Len() int {
	return len(r.records)
}

// All returns every loaded district row.
func (r *DatasetRepository) All() []model.DistrictRecord {
	return r.records
}

// Filter scans for rows matching the filter. Region and state constraints
// are AND-combined, states OR-combined, all matching case-insensitively.
func (r *DatasetRepository) Filter(f model.DatasetFilter) []model.DistrictRecord {
	if f.IsEmpty() {
		return r.records
	}

	var states map[string]bool
	if len(f.States) > 0 {
		states = make(map[string]bool, len(f.States))
		for _, s := range f.States {
			states[strings.ToLower(s)] = true
		}
	}

	matched := make([]model.DistrictRecord, 0, len(r.records))
	for _, rec := range r.records {
		if f.Region != "" && !strings.EqualFold(string(rec.Region), f.Region) {
			continue
		}
		if states != nil && !states[strings.ToLower(rec.State)] {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// Regions returns the distinct region labels present, sorted.
func (r *DatasetRepository) Regions() []string {
	return distinct(r.records, func(rec model.DistrictRecord) string {
		return string(rec.Region)
	})
}

// States returns the distinct states present, sorted, optionally restricted
// to a region. Drives the cascading state dropdown.
func (r *DatasetRepository) States(region string) []string {
	rows := r.records
	if region != "" {
		rows = r.Filter(model.DatasetFilter{Region: region})
	}
	return distinct(rows, func(rec model.DistrictRecord) string {
		return rec.State
	})
}

func distinct(records []model.DistrictRecord, key func(model.DistrictRecord) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, rec := range records {
		v := key(rec)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
