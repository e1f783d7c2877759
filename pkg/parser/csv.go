package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"bio-scraper/pkg/domain"
)

// CSVParser reads the uploaded URL list. The input needs a URL column and a
// Target Name column; headers are matched case-insensitively and "Name" is
// accepted as an alias for "Target Name". Extra columns are ignored.
type CSVParser struct{}

// NewCSVParser creates a new CSV parser
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// ParseFile reads input rows from a CSV file on disk.
func (p *CSVParser) ParseFile(path string) ([]domain.InputRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse reads input rows from CSV data. A missing required column is fatal
// for the whole batch and is reported before any fetch happens.
func (p *CSVParser) Parse(r io.Reader) ([]domain.InputRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	urlCol, nameCol, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	var rows []domain.InputRow
	for _, record := range records[1:] {
		row := domain.InputRow{
			URL:        cell(record, urlCol),
			TargetName: cell(record, nameCol),
		}
		if row.URL == "" && row.TargetName == "" {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no input rows found in CSV")
	}

	return rows, nil
}

func resolveColumns(header []string) (urlCol, nameCol int, err error) {
	urlCol, nameCol = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "url":
			if urlCol == -1 {
				urlCol = i
			}
		case "target name":
			nameCol = i
		case "name":
			if nameCol == -1 {
				nameCol = i
			}
		}
	}
	if urlCol == -1 || nameCol == -1 {
		return 0, 0, fmt.Errorf("CSV must contain columns: 'URL' and 'Target Name'")
	}
	return urlCol, nameCol, nil
}

func cell(record []string, col int) string {
	if col >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[col])
}
