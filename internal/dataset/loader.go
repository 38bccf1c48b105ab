package dataset

import (
	"fmt"
	"os"

	"github.com/bsmietanka/interactive-map/internal/logger"
)

// Paths locates the two input documents.
type Paths struct {
	Annotations  string
	Descriptions string
}

// Load reads both documents from disk and builds the unified table.
func Load(paths Paths, schema Schema, lggr logger.Logger) (*Table, *Report, error) {
	annData, err := os.ReadFile(paths.Annotations)
	if err != nil {
		return nil, nil, fmt.Errorf("read annotations: %w", err)
	}
	descData, err := os.ReadFile(paths.Descriptions)
	if err != nil {
		return nil, nil, fmt.Errorf("read descriptions: %w", err)
	}

	table, report, err := Build(annData, descData, schema, lggr)
	if err != nil {
		return nil, nil, err
	}
	lggr.Infow("Dataset loaded",
		"annotations", paths.Annotations,
		"descriptions", paths.Descriptions,
		"rows", table.Len(),
		"matched", report.Matched,
		"unmatched", report.Unmatched,
		"warnings", len(report.Warnings),
	)
	return table, report, nil
}

// Build parses, normalizes, explodes and joins the two documents.
// Recoverable problems are logged and returned in the report.
func Build(annotationData, descriptionData []byte, schema Schema, lggr logger.Logger) (*Table, *Report, error) {
	annotations, err := ParseAnnotations(annotationData)
	if err != nil {
		return nil, nil, err
	}
	records, err := ParseDescriptions(descriptionData, schema)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{
		Annotations:  len(annotations),
		Descriptions: len(records),
	}

	records, warnings := NormalizeRecords(records, schema)
	report.Warnings = append(report.Warnings, warnings...)

	exploded, warnings := Explode(records)
	report.Warnings = append(report.Warnings, warnings...)
	report.Exploded = len(exploded)

	table, warnings := Join(annotations, exploded, schema)
	report.Warnings = append(report.Warnings, warnings...)

	keys := make(map[string]bool, len(exploded))
	for _, rec := range exploded {
		keys[rec.Key] = true
	}
	for i := 0; i < table.Len(); i++ {
		if keys[table.Row(i).Key] {
			report.Matched++
		} else {
			report.Unmatched++
		}
	}

	for _, w := range report.Warnings {
		lggr.Warnw(w.String(), "kind", string(w.Kind), "record", w.Record)
	}
	return table, report, nil
}
