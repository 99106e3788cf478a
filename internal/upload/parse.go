// Package upload parses student roster files (CSV or XLSX) into normalized
// rows ready for insertion.
package upload

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one normalized roster line.
type Row struct {
	Name   string `json:"name"`
	RollNo string `json:"roll_no"`
	Branch string `json:"branch"`
	Year   string `json:"year"`
}

// RowError records a rejected line and where it was in the file.
type RowError struct {
	Index int `json:"index"`
	Row   Row `json:"row"`
}

// ErrUnsupportedType rejects anything that is not .csv or .xlsx.
var ErrUnsupportedType = fmt.Errorf("unsupported file type")

// ParseStudentFile parses a roster by file extension.
func ParseStudentFile(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	default:
		return nil, ErrUnsupportedType
	}
}

func normalizeRow(values map[string]string) Row {
	rollNo := values["roll_no"]
	if rollNo == "" {
		rollNo = values["roll"]
	}
	return Row{
		Name:   strings.TrimSpace(values["name"]),
		RollNo: strings.TrimSpace(rollNo),
		Branch: strings.TrimSpace(values["branch"]),
		Year:   strings.TrimSpace(values["year"]),
	}
}

func parseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		values := map[string]string{}
		for i, h := range headers {
			if i < len(record) {
				values[h] = record[i]
			}
		}
		rows = append(rows, normalizeRow(values))
	}
	return rows, nil
}

func parseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		values := map[string]string{}
		for i, h := range headers {
			if i < len(record) {
				values[h] = record[i]
			}
		}
		rows = append(rows, normalizeRow(values))
	}
	return rows, nil
}

// ValidateRows splits parsed rows into insertable rows and rejects. A row
// must carry all four fields.
func ValidateRows(rows []Row) (valid []Row, rejects []RowError) {
	for i, row := range rows {
		if row.Name == "" || row.RollNo == "" || row.Branch == "" || row.Year == "" {
			rejects = append(rejects, RowError{Index: i, Row: row})
			continue
		}
		valid = append(valid, row)
	}
	return valid, rejects
}
