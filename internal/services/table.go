package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"chartserver/internal/models"
)

// ParseCSV reads a delimited table with a header row. Every record must have
// as many fields as the header; column types are inferred from the cells.
func ParseCSV(r io.Reader) (*models.Table, error) {
	return parseCSV(r, nil)
}

// parseCSV applies hints (column name to type) where every cell of the column
// fits the hinted type and falls back to inference elsewhere. Hints for a
// different column set are ignored.
func parseCSV(r io.Reader, hints map[string]models.DType) (*models.Table, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty, a header row is required", ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read headers: %v", ErrValidation, err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	if err := validateColumns(headers); err != nil {
		return nil, err
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read record: %v", ErrValidation, err)
		}
		records = append(records, record)
	}

	table := &models.Table{
		Columns: headers,
		DTypes:  make([]models.DType, len(headers)),
		Rows:    make([]models.Row, len(records)),
	}
	if len(hints) != len(headers) {
		hints = nil
	}
	for col, name := range headers {
		if hint, ok := hints[name]; ok && fitsDType(records, col, hint) {
			table.DTypes[col] = hint
			continue
		}
		table.DTypes[col] = inferDType(records, col)
	}
	for i, record := range records {
		row := make(models.Row, len(headers))
		for col, name := range headers {
			row[name] = convertCell(record[col], table.DTypes[col])
		}
		table.Rows[i] = row
	}
	return table, nil
}

// WriteCSV serializes the table with its header row. Rows must be uniform.
func WriteCSV(w io.Writer, table *models.Table) error {
	if err := ValidateTable(table); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			record[i] = formatCell(row[col])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ValidateTable checks that the column list is usable and that every row has exactly that column set.
func ValidateTable(table *models.Table) error {
	if table == nil {
		return fmt.Errorf("%w: table is nil", ErrValidation)
	}
	if err := validateColumns(table.Columns); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrValidation, i, len(row), len(table.Columns))
		}
		for _, col := range table.Columns {
			if _, ok := row[col]; !ok {
				return fmt.Errorf("%w: row %d is missing column %q", ErrValidation, i, col)
			}
		}
	}
	return nil
}

// TableFromRows builds a table from rows with an explicit column order and infers column types.
func TableFromRows(columns []string, rows []models.Row) (*models.Table, error) {
	table := &models.Table{Columns: columns, Rows: rows}
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	table.DTypes = make([]models.DType, len(columns))
	for i, col := range columns {
		table.DTypes[i] = valueDType(rows, col)
	}
	return table, nil
}

func validateColumns(columns []string) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: table has no columns", ErrValidation)
	}
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("%w: column %d has an empty name", ErrValidation, i)
		}
		if seen[col] {
			return fmt.Errorf("%w: duplicate column %q", ErrValidation, col)
		}
		seen[col] = true
	}
	return nil
}

func inferDType(records [][]string, col int) models.DType {
	allInt := true
	for _, record := range records {
		cell := record[col]
		if cell == "" {
			continue
		}
		if allInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
				continue
			}
			allInt = false
		}
		if _, ok := parseFiniteFloat(cell); !ok {
			return models.DTypeObject
		}
	}
	if allInt && hasValue(records, col) {
		return models.DTypeInt
	}
	// Columns with no values at all are treated as float, matching NaN-only columns.
	return models.DTypeFloat
}

func fitsDType(records [][]string, col int, dtype models.DType) bool {
	switch dtype {
	case models.DTypeObject:
		return true
	case models.DTypeInt:
		for _, record := range records {
			if record[col] == "" {
				continue
			}
			if _, err := strconv.ParseInt(record[col], 10, 64); err != nil {
				return false
			}
		}
		return true
	case models.DTypeFloat:
		for _, record := range records {
			if record[col] == "" {
				continue
			}
			if _, ok := parseFiniteFloat(record[col]); !ok {
				return false
			}
		}
		return true
	}
	return false
}

func hasValue(records [][]string, col int) bool {
	for _, record := range records {
		if record[col] != "" {
			return true
		}
	}
	return false
}

func valueDType(rows []models.Row, col string) models.DType {
	dtype := models.DType("")
	for _, row := range rows {
		var cur models.DType
		switch row[col].(type) {
		case nil:
			continue
		case int, int32, int64:
			cur = models.DTypeInt
		case float32, float64:
			cur = models.DTypeFloat
		default:
			return models.DTypeObject
		}
		if dtype == "" || (dtype == models.DTypeInt && cur == models.DTypeFloat) {
			dtype = cur
		}
	}
	if dtype == "" {
		return models.DTypeFloat
	}
	return dtype
}

// parseFiniteFloat accepts decimal notation only; hex floats, NaN and Inf stay text.
func parseFiniteFloat(s string) (float64, bool) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func convertCell(cell string, dtype models.DType) any {
	if cell == "" {
		return nil
	}
	switch dtype {
	case models.DTypeInt:
		v, _ := strconv.ParseInt(cell, 10, 64)
		return v
	case models.DTypeFloat:
		v, _ := parseFiniteFloat(cell)
		return v
	}
	return cell
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return formatFloat(float64(val))
	case float64:
		return formatFloat(val)
	case bool:
		return strconv.FormatBool(val)
	}
	return fmt.Sprint(v)
}

// formatFloat keeps a trailing ".0" on integral values so the column reads back as float.
func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ToFloat converts a numeric cell to float64.
func ToFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	}
	return 0, false
}
