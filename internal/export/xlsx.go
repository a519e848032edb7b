package export

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jackzampolin/docreview/internal/review"
)

const (
	metadataSheet = "Metadata"
	recordsSheet  = "Records"
	changesSheet  = "Changes"
)

// RenderXLSX returns an XLSX workbook for the document. Records and changes
// go on the first sheet and export_metadata on a second one.
func RenderXLSX(doc review.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	var (
		dataSheet string
		meta      [][2]any
		err       error
	)
	switch d := doc.(type) {
	case *review.ApprovedExport:
		dataSheet = recordsSheet
		meta = approvedMetadataRows(d.ExportMetadata)
		err = writeRecords(f, dataSheet, d.Records)
	case *review.AllExport:
		dataSheet = recordsSheet
		meta = allMetadataRows(d.ExportMetadata)
		err = writeRecords(f, dataSheet, d.Records)
	case *review.ChangesExport:
		dataSheet = changesSheet
		meta = changesMetadataRows(d.ExportMetadata)
		err = writeChanges(f, dataSheet, d.Changes)
	default:
		return nil, fmt.Errorf("%w: cannot render %T as xlsx", ErrUnknownFormat, doc)
	}
	if err != nil {
		return nil, err
	}
	if err := writeMetadata(f, meta); err != nil {
		return nil, err
	}

	index, _ := f.GetSheetIndex(dataSheet)
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRecords renames the default sheet and writes one row per record.
// Columns are the union of record fields in first-seen order.
func writeRecords(f *excelize.File, sheet string, records []*review.Record) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	var columns []string
	colIndex := make(map[string]int)
	for _, rec := range records {
		for _, k := range rec.Keys() {
			if _, ok := colIndex[k]; !ok {
				colIndex[k] = len(columns)
				columns = append(columns, k)
			}
		}
	}

	for i, name := range columns {
		if err := setCell(f, sheet, i+1, 1, name); err != nil {
			return err
		}
	}
	for r, rec := range records {
		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			if err := setCell(f, sheet, colIndex[k]+1, r+2, cellValue(v)); err != nil {
				return err
			}
		}
	}
	if len(columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(columns))
		_ = f.SetColWidth(sheet, "A", last, 18)
	}
	return nil
}

func writeChanges(f *excelize.File, sheet string, changes []review.Change) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	headers := []string{"record_index", "source_page", "field", "original_value", "new_value"}
	for i, h := range headers {
		if err := setCell(f, sheet, i+1, 1, h); err != nil {
			return err
		}
	}
	for i, c := range changes {
		row := []any{c.RecordIndex, c.SourcePage, c.Field, cellValue(c.OriginalValue), cellValue(c.NewValue)}
		for col, v := range row {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}
	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "E", 40)
	return nil
}

func writeMetadata(f *excelize.File, rows [][2]any) error {
	if _, err := f.NewSheet(metadataSheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	for i, kv := range rows {
		if err := setCell(f, metadataSheet, 1, i+1, kv[0]); err != nil {
			return err
		}
		if err := setCell(f, metadataSheet, 2, i+1, kv[1]); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(metadataSheet, "A", "A", 18)
	_ = f.SetColWidth(metadataSheet, "B", "B", 40)
	return nil
}

func approvedMetadataRows(m review.ApprovedMetadata) [][2]any {
	pages, _ := json.Marshal(m.ApprovedPages)
	return [][2]any{
		{"source_document", m.SourceDocument},
		{"export_date", m.ExportDate},
		{"export_type", m.ExportType},
		{"approved_pages", string(pages)},
		{"total_pages", m.TotalPages},
	}
}

func allMetadataRows(m review.AllMetadata) [][2]any {
	rows := [][2]any{
		{"source_document", m.SourceDocument},
		{"export_date", m.ExportDate},
		{"export_type", m.ExportType},
	}
	for _, page := range review.SortedPageNumbers(m.PageStatus) {
		rows = append(rows, [2]any{fmt.Sprintf("page %d", page), string(m.PageStatus[page])})
	}
	return rows
}

func changesMetadataRows(m review.ChangesMetadata) [][2]any {
	return [][2]any{
		{"source_document", m.SourceDocument},
		{"export_date", m.ExportDate},
		{"export_type", m.ExportType},
		{"total_changes", m.TotalChanges},
	}
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("xlsx cell %s: %w", cell, err)
	}
	return nil
}

// cellValue keeps scalars typed and writes objects and arrays as JSON.
func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case string, float64, bool, int:
		return x
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
