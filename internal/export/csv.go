package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVRenderer writes the tabular form of a report: a header row followed by data rows.
type CSVRenderer struct{}

func (CSVRenderer) Format() string      { return "csv" }
func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }
func (CSVRenderer) Extension() string   { return "csv" }

func (CSVRenderer) Render(report Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if len(report.Table.Headers) > 0 {
		if err := w.Write(report.Table.Headers); err != nil {
			return nil, fmt.Errorf("failed to write csv header: %w", err)
		}
	}
	if err := w.WriteAll(report.Table.Rows); err != nil {
		return nil, fmt.Errorf("failed to render %s as csv: %w", report.Name, err)
	}
	return buf.Bytes(), nil
}
