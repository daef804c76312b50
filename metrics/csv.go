// Package metrics - CSV export of fronts.
package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes points to w as CSV with a `f1,f2` header row.
// Values are rendered with strconv 'g' formatting at full precision so
// a round trip through external tooling is lossless.
//
// Complexity: O(n).
func WriteCSV(w io.Writer, points [][2]float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"f1", "f2"}); err != nil {
		return fmt.Errorf("metrics: write csv header: %w", err)
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p[0], 'g', -1, 64),
			strconv.FormatFloat(p[1], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("metrics: write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("metrics: flush csv: %w", err)
	}

	return nil
}

// WriteCSVFile creates (or truncates) path and writes points via
// WriteCSV.
func WriteCSVFile(path string, points [][2]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, points); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("metrics: close %s: %w", path, err)
	}

	return nil
}
