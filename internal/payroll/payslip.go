package payroll

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// WritePayslipPDF renders a one-page payslip for a single line item and
// writes it under dir, named after the employee id and period month.
func WritePayslipPDF(item LineItem, month, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("payslip_%d_%s.pdf", item.EmployeeID, month))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", item.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", month))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base pay: %.2f", item.BasePay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonus: %.2f", item.Bonus))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime: %.2f", item.OvertimePay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross income: %.2f", item.GrossIncome))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax withheld: %.2f", item.TaxWithheld))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %.2f", item.NetPay))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
