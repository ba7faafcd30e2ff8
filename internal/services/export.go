package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"chartserver/internal/models"
)

const exportSheet = "Sheet1"

// writeExport writes the table snapshot of chart token in the requested format
// and returns the export file name. JSON exports are the chart document itself.
func (store *ChartStore) writeExport(token string, format models.ExportFormat, table *models.Table) (string, error) {
	filename := ChartFilename(token, format)
	var raw []byte
	switch format {
	case models.ExportJSON:
		return filename, nil
	case models.ExportCSV:
		var buf bytes.Buffer
		if err := WriteCSV(&buf, table); err != nil {
			return "", newStoreError("create", filename, err)
		}
		raw = buf.Bytes()
	case models.ExportXLSX:
		buf, err := encodeWorkbook(table)
		if err != nil {
			return "", newStoreError("create", filename, err)
		}
		raw = buf
	default:
		return "", newStoreError("create", filename, fmt.Errorf("%w: unsupported export format %q", ErrValidation, format))
	}
	if err := store.writeFile(filename, raw); err != nil {
		return "", newStoreError("create", filename, err)
	}
	return filename, nil
}

func encodeWorkbook(table *models.Table) ([]byte, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range table.Rows {
		cells := make([]any, len(table.Columns))
		for j, col := range table.Columns {
			cells[j] = row[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
