// Package source reads raw deal records from tabular files.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// ReadFile reads a headered CSV file into raw records.
func ReadFile(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path) //nolint:gosec // input path from trusted config
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// Read parses headered CSV data into raw records. The first row names
// the columns; ragged rows are tolerated and simply yield records with
// fewer fields. Cell-level cleanup is the pipeline's job, not the
// reader's.
func Read(r io.Reader) ([]domain.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	var records []domain.RawRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}

		rec := make(domain.RawRecord, len(header))
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			rec[header[i]] = cell
		}
		records = append(records, rec)
	}

	return records, nil
}
