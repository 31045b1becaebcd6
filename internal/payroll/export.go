package payroll

import (
	"encoding/csv"
	"fmt"
	"io"

	internal "github.com/frahmantamala/payroll-management/internal"
)

// exportHeader is the fixed layout of a payroll CSV export. Amounts are
// written bare, without the currency suffix the reports carry.
var exportHeader = []string{"name", "base pay", "bonus", "overtime", "gross", "tax", "net"}

// ExportCSV writes the batch as ;-delimited rows with a fixed header.
func ExportCSV(batch *Batch, w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(exportHeader); err != nil {
		return internal.NewInternalError("write payroll export header", err)
	}

	for _, item := range batch.Items {
		row := []string{
			item.FullName,
			formatAmount(item.BasePay),
			formatAmount(item.Bonus),
			formatAmount(item.OvertimePay),
			formatAmount(item.GrossIncome),
			formatAmount(item.TaxWithheld),
			formatAmount(item.NetPay),
		}
		if err := writer.Write(row); err != nil {
			return internal.NewInternalError("write payroll export row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return internal.NewInternalError("flush payroll export", err)
	}
	return nil
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
