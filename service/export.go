package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/credit-report-analyzer/dto"
	"github.com/Aashish23092/credit-report-analyzer/utils"
)

// Export sheet names, in workbook order.
const (
	SheetSummary    = "Summary"
	SheetCompany    = "Company"
	SheetFinancial  = "Financial"
	SheetLoans      = "Loans"
	SheetCollateral = "Collateral"
	SheetReport     = "Report"
)

// sheetWriter appends rows to one worksheet.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) write(values ...any) {
	w.row++
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, w.row)
		_ = w.f.SetCellValue(w.sheet, cell, v)
	}
}

func (w *sheetWriter) blank() {
	w.row++
}

// orEmpty renders absent values as empty cells.
func orEmpty[T any](v *T) any {
	if v == nil {
		return ""
	}
	return *v
}

// BuildWorkbook renders an analysis as an XLSX workbook.
func BuildWorkbook(a *dto.AnalysisResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetCompany, SheetFinancial, SheetLoans, SheetCollateral, SheetReport} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	writeSummarySheet(f, a)
	writeCompanySheet(f, &a.Structured.Company)
	writeFinancialSheet(f, &a.Structured.Financial)
	writeLoanSheet(f, &a.Structured.Loan)
	writeCollateralSheet(f, &a.Structured.Collateral)
	writeReportSheet(f, a.Report)

	_ = f.SetColWidth(SheetSummary, "A", "A", 28)
	_ = f.SetColWidth(SheetCompany, "A", "B", 24)
	_ = f.SetColWidth(SheetLoans, "B", "B", 24)
	_ = f.SetColWidth(SheetReport, "B", "B", 100)
	f.SetActiveSheet(0)
	return f, nil
}

func writeSummarySheet(f *excelize.File, a *dto.AnalysisResponse) {
	w := &sheetWriter{f: f, sheet: SheetSummary}
	w.write("Analysis ID", a.ID)
	w.write("Analyzed at", a.AnalyzedAt)
	w.write("Total files", a.Summary.TotalFiles)
	w.write("Quality tier", string(a.Summary.QualityTier))
	w.write("Has error", a.Summary.HasError)

	types := make([]string, 0, len(a.Summary.TypeCounts))
	for t := range a.Summary.TypeCounts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	w.blank()
	w.write("Document type", "Count")
	for _, t := range types {
		w.write(t, a.Summary.TypeCounts[dto.DocType(t)])
	}

	w.blank()
	w.write("File", "Document type", "Characters", "Error")
	for _, d := range a.Documents {
		w.write(d.Filename, string(d.DocType), d.TextChars, orEmpty(d.Error))
	}

	c := a.Structured.Completeness
	w.blank()
	w.write("Company info", c.HasCompanyInfo)
	w.write("Financial info", c.HasFinancialInfo)
	w.write("Credit info", c.HasCreditInfo)
	w.write("Loan info", c.HasLoanInfo)
	w.write("Collateral info", c.HasCollateralInfo)
}

func writeCompanySheet(f *excelize.File, c *dto.CompanyInfo) {
	w := &sheetWriter{f: f, sheet: SheetCompany}
	w.write("Field", "Value")
	w.write("Name", orEmpty(c.Name))
	w.write("Registration number", orEmpty(c.RegistrationNumber))
	w.write("CEO", orEmpty(c.CEO))
	w.write("Industry", orEmpty(c.Industry))
	w.write("Established", orEmpty(c.EstablishedDate))
	w.write("Address", orEmpty(c.Address))
	w.write("Employees", orEmpty(c.EmployeeCount))
	w.write("Phone", orEmpty(c.Phone))
}

func writeFinancialSheet(f *excelize.File, fd *dto.FinancialData) {
	w := &sheetWriter{f: f, sheet: SheetFinancial}
	w.write("Metric (million)", "Value 1", "Value 2", "Value 3")

	series := []struct {
		label  string
		values []float64
	}{
		{"Revenue", fd.Revenue},
		{"Operating income", fd.OperatingIncome},
		{"Net income", fd.NetIncome},
		{"Total assets", fd.TotalAssets},
		{"Total liabilities", fd.TotalLiabilities},
		{"Equity", fd.Equity},
	}
	for _, s := range series {
		row := []any{s.label}
		for _, v := range s.values {
			row = append(row, v)
		}
		w.write(row...)
	}

	w.blank()
	w.write("Ratio (%)", "Value")
	w.write("Debt ratio", orEmpty(fd.DebtRatio))
	w.write("Current ratio", orEmpty(fd.CurrentRatio))
	w.write("Quick ratio", orEmpty(fd.QuickRatio))
	w.write("ROE", orEmpty(fd.ROE))
	w.write("ROA", orEmpty(fd.ROA))
}

func writeLoanSheet(f *excelize.File, l *dto.LoanDetails) {
	w := &sheetWriter{f: f, sheet: SheetLoans}
	w.write("Kind", "Institution", "Loan type", "Amount (million)")
	for _, loan := range l.Loans {
		w.write("loan", loan.Institution, string(loan.LoanType), loan.Amount)
	}
	for _, g := range l.Guarantees {
		w.write("guarantee", g.Institution, "", g.Amount)
	}
	w.blank()
	w.write("Total loan", "", "", orEmpty(l.TotalLoan))
	w.write("Total guarantee", "", "", orEmpty(l.TotalGuarantee))
	w.write("Loan count", "", "", l.LoanCount)
}

func writeCollateralSheet(f *excelize.File, c *dto.CollateralDetails) {
	w := &sheetWriter{f: f, sheet: SheetCollateral}
	w.write("Type", "Amount (million)")
	for _, col := range c.Collaterals {
		w.write(string(col.Type), col.Amount)
	}
	w.blank()
	w.write("Total collateral", orEmpty(c.TotalCollateral))
	w.write("Collateral count", c.CollateralCount)
}

func writeReportSheet(f *excelize.File, report dto.ReportSections) {
	w := &sheetWriter{f: f, sheet: SheetReport}
	w.write("Section", "Text")
	for _, h := range utils.ReportHeadings {
		w.write(h.Key, report[h.Key])
	}
}

// ExportXLSX returns the workbook for a stored analysis as bytes.
func (s *AnalysisService) ExportXLSX(ctx context.Context, id string) ([]byte, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := BuildWorkbook(a)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
