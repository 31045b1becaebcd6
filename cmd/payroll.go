package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/frahmantamala/payroll-management/internal/payroll"
	"github.com/spf13/cobra"
)

var (
	payrollMonth      string
	payrollTotalDays  int
	payrollWorkedDays int
	payrollKPITier    string
	payrollOvertime   float64
	payrollIDs        []int64
	payrollExportPath string
	payslipDir        string
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Run a payroll batch over the active roster",
	Long: `Compute a payroll batch from the current employee snapshot and the
given period parameters, print the line items and optionally export the
batch as CSV or per-employee payslip PDFs.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		svc, err := buildServices(cfg)
		if err != nil {
			log.Fatalf("failed to init services: %v", err)
		}

		params := payroll.PeriodParams{
			Month:         payrollMonth,
			TotalDays:     payrollTotalDays,
			WorkedDays:    payrollWorkedDays,
			KPITier:       payrollKPITier,
			OvertimeHours: payrollOvertime,
		}

		var batch *payroll.Batch
		if len(payrollIDs) > 0 {
			batch, err = svc.payroll.RunSelected(params, payrollIDs)
		} else {
			batch, err = svc.payroll.RunAll(params)
		}
		if err != nil {
			log.Fatalf("payroll run failed: %v", err)
		}

		for _, item := range batch.Items {
			fmt.Printf("%-30s gross %12.2f tax %12.2f net %12.2f\n",
				item.FullName, item.GrossIncome, item.TaxWithheld, item.NetPay)
		}
		fmt.Printf("\nBatch %s (%s): %d employees, gross %.2f, tax %.2f, net %.2f\n",
			batch.ID, batch.Month, len(batch.Items), batch.GrossTotal, batch.TaxTotal, batch.NetTotal)

		if payrollExportPath != "" {
			file, err := os.Create(payrollExportPath)
			if err != nil {
				log.Fatalf("failed to create export file: %v", err)
			}
			defer file.Close()
			if err := payroll.ExportCSV(batch, file); err != nil {
				log.Fatalf("failed to export batch: %v", err)
			}
			fmt.Printf("Batch exported to %s\n", payrollExportPath)
		}

		if payslipDir != "" {
			for _, item := range batch.Items {
				path, err := payroll.WritePayslipPDF(item, batch.Month, payslipDir)
				if err != nil {
					log.Fatalf("failed to write payslip for %s: %v", item.FullName, err)
				}
				fmt.Printf("Payslip written to %s\n", path)
			}
		}
	},
}

func init() {
	payrollCmd.Flags().StringVar(&payrollMonth, "month", time.Now().Format("2006-01"), "payroll period month")
	payrollCmd.Flags().IntVar(&payrollTotalDays, "total-days", 22, "working days in the period")
	payrollCmd.Flags().IntVar(&payrollWorkedDays, "worked-days", 22, "days actually worked")
	payrollCmd.Flags().StringVar(&payrollKPITier, "kpi", "C", "performance tier (A, B, C or D)")
	payrollCmd.Flags().Float64Var(&payrollOvertime, "overtime", 0, "overtime hours")
	payrollCmd.Flags().Int64SliceVar(&payrollIDs, "ids", nil, "restrict the run to these employee ids")
	payrollCmd.Flags().StringVar(&payrollExportPath, "export", "", "write the batch as ;-delimited CSV to this file")
	payrollCmd.Flags().StringVar(&payslipDir, "payslip-dir", "", "write per-employee payslip PDFs into this directory")
}
