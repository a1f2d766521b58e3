// Package export renders payroll listings as downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"

	payrollSheet = "Payroll"
)

var payrollHeader = []string{"ID", "Employee ID", "Name", "Month", "Basic Salary", "Tax Withheld", "Net Pay", "Status"}

type totals struct {
	basic decimal.Decimal
	tax   decimal.Decimal
	net   decimal.Decimal
}

func sum(rows []payroll.PayrollResponse) totals {
	var t totals
	for _, r := range rows {
		t.basic = t.basic.Add(r.BasicSalary.Decimal)
		t.tax = t.tax.Add(r.TaxWithheld.Decimal)
		t.net = t.net.Add(r.NetPay.Decimal)
	}
	return t
}

// Title names the listing, "all months" when month is empty.
func Title(month string) string {
	if month == "" {
		return "Payroll - all months"
	}
	return "Payroll - " + month
}

// PayrollXLSX writes one row per payroll record followed by a totals row.
func PayrollXLSX(month string, rows []payroll.PayrollResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payrollSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(payrollHeader))
	for i, h := range payrollHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(payrollSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			r.ID, r.EmployeeID, r.EmployeeName, r.Month,
			r.BasicSalary.Float64(), r.TaxWithheld.Float64(), r.NetPay.Float64(), string(r.Status),
		}
		if err := f.SetSheetRow(payrollSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	t := sum(rows)
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+2)
	if err != nil {
		return nil, err
	}
	footer := []interface{}{"Total", "", "", month, t.basic.InexactFloat64(), t.tax.InexactFloat64(), t.net.InexactFloat64(), ""}
	if err := f.SetSheetRow(payrollSheet, cell, &footer); err != nil {
		return nil, fmt.Errorf("write totals: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// PayrollPDF renders a landscape A4 summary table of the payroll records.
func PayrollPDF(month string, rows []payroll.PayrollResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, Title(month))
	pdf.Ln(14)

	widths := []float64{15, 25, 60, 25, 35, 35, 35, 25}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range payrollHeader {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		cells := []string{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.EmployeeID),
			r.EmployeeName,
			r.Month,
			r.BasicSalary.StringFixed(2),
			r.TaxWithheld.StringFixed(2),
			r.NetPay.StringFixed(2),
			string(r.Status),
		}
		for i, c := range cells {
			align := "L"
			if i >= 4 && i <= 6 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	t := sum(rows)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[4], 8, t.basic.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 8, t.tax.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 8, t.net.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[7], 8, "", "1", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
