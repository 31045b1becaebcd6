package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/frahmantamala/payroll-management/internal/reports"
	"github.com/spf13/cobra"
)

var (
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report [kind]",
	Short: "Generate one of the fixed reports",
	Long: `Render a report over the active roster. Kinds: payroll_statement,
employee_roster, tax_report, department_report.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		svc, err := buildServices(cfg)
		if err != nil {
			log.Fatalf("failed to init services: %v", err)
		}

		report, err := svc.reports.Generate(reports.Kind(args[0]))
		if err != nil {
			log.Fatalf("report generation failed: %v", err)
		}

		out := os.Stdout
		if reportOut != "" {
			file, err := os.Create(reportOut)
			if err != nil {
				log.Fatalf("failed to create output file: %v", err)
			}
			defer file.Close()
			out = file
		}

		switch reportFormat {
		case "csv":
			err = reports.ExportCSV(report, out)
		default:
			err = reports.ExportText(report, out)
		}
		if err != nil {
			log.Fatalf("report export failed: %v", err)
		}

		if reportOut != "" {
			fmt.Printf("Report written to %s\n", reportOut)
		}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "output format: text or csv")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "write the report to this file instead of stdout")
}
