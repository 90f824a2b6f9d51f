package service

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/freshkart/freshkart-backend/internal/app/model"
)

// ExportFormat selects the roster export encoding.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat defaults to CSV; only "xlsx" selects the workbook.
func ParseExportFormat(s string) ExportFormat {
	if strings.EqualFold(s, string(FormatXLSX)) {
		return FormatXLSX
	}
	return FormatCSV
}

var (
	sellerExportHeader = []string{"Store Name", "Email", "Phone Number", "Category", "City", "Approved Date", "Confirmed"}
	agentExportHeader  = []string{"Full Name", "Email", "Contact Number", "City", "Approved Date", "Confirmed"}
)

func sellerExportRows(apps []model.SellerApplication) [][]string {
	rows := make([][]string, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		rows = append(rows, []string{
			app.StoreName,
			app.Email,
			app.PhoneNumber,
			strings.Join(app.ProductCategories, ", "),
			app.City,
			exportDate(app),
			confirmedLabel(app.IsConfirmed),
		})
	}
	return rows
}

func agentExportRows(apps []model.DeliveryAgentApplication) [][]string {
	rows := make([][]string, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		rows = append(rows, []string{
			app.FullName,
			app.Email,
			app.ContactNumber,
			app.City,
			agentExportDate(app),
			confirmedLabel(app.IsConfirmed),
		})
	}
	return rows
}

func exportDate(app *model.SellerApplication) string {
	if app.ApprovedAt == nil {
		return ""
	}
	return app.ApprovedAt.Format("2006-01-02")
}

func agentExportDate(app *model.DeliveryAgentApplication) string {
	if app.ApprovedAt == nil {
		return ""
	}
	return app.ApprovedAt.Format("2006-01-02")
}

func confirmedLabel(confirmed bool) string {
	if confirmed {
		return "Yes"
	}
	return "No"
}

// renderCSV renders a CSV document with every field quoted unconditionally,
// the format the partner import tooling expects. encoding/csv only quotes
// when it must, so the rows are rendered by hand; interior quotes are doubled
// per RFC 4180.
func renderCSV(header []string, rows [][]string) []byte {
	var buf bytes.Buffer
	writeCSVRow(&buf, header)
	for _, row := range rows {
		writeCSVRow(&buf, row)
	}
	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}

// renderXLSX renders the same roster as a single-sheet workbook.
func renderXLSX(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	writeRow := func(rowNum int, fields []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(fields))
		for i, v := range fields {
			values[i] = v
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	if err := writeRow(1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
