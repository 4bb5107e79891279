package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// readMatrix loads a CSV file as an N×F sample matrix. Every row must have
// the same number of numeric fields; with header=true the first row is
// skipped.
func readMatrix(path string, header bool) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if header && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: no data rows", path)
	}

	rows, cols := len(records), len(records[0])
	x := mat.NewDense(rows, cols, nil)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("read %s: row %d has %d fields, want %d", path, i+1, len(rec), cols)
		}
		for j, field := range rec {
			v, parseErr := strconv.ParseFloat(field, 64)
			if parseErr != nil {
				return nil, fmt.Errorf("read %s: row %d field %d: %w", path, i+1, j+1, parseErr)
			}
			x.Set(i, j, v)
		}
	}

	return x, nil
}

// writeMatrix stores a matrix as CSV with full float64 precision.
func writeMatrix(path string, m mat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows, cols := m.Dims()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err = w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()

	return w.Error()
}
