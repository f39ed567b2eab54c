// Package dataset reads tabular numeric data from CSV and Excel files into
// column form for model fitting.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"nestedlm/domain/core"
)

// Table holds a dataset as named numeric columns of equal length.
type Table struct {
	Headers []string
	Columns map[string][]float64
	Rows    int
}

// Column returns the named column or a core.ErrColumnNotFound error.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.Columns[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	return col, nil
}

// Reader loads a Table from a CSV or XLSX file, dispatching on extension.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given file path.
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read parses the file into a Table. The first row is the header; every
// other cell must be numeric (empty cells become NaN).
func (r *Reader) Read() (*Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("data file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	return processRows(rows)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

func processRows(rows [][]string) (*Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", core.ErrInsufficientData)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	columns := make(map[string][]float64, len(headers))
	for _, h := range headers {
		columns[h] = make([]float64, 0, len(rows)-1)
	}

	for rowIdx, row := range rows[1:] {
		for colIdx, h := range headers {
			var cell string
			if colIdx < len(row) {
				cell = strings.TrimSpace(row[colIdx])
			}
			if cell == "" {
				columns[h] = append(columns[h], math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: non-numeric value %q", rowIdx+2, h, cell)
			}
			columns[h] = append(columns[h], v)
		}
	}

	return &Table{
		Headers: headers,
		Columns: columns,
		Rows:    len(rows) - 1,
	}, nil
}
