package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show roster statistics",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		svc, err := buildServices(cfg)
		if err != nil {
			log.Fatalf("failed to init services: %v", err)
		}

		stats, err := svc.employees.Stats()
		if err != nil {
			log.Fatalf("failed to compute stats: %v", err)
		}

		fmt.Printf("Total employees:  %d\n", stats.TotalEmployees)
		fmt.Printf("Active employees: %d\n", stats.ActiveEmployees)
		fmt.Printf("Payroll fund:     %.2f\n", stats.PayrollFund)
		fmt.Printf("Average salary:   %.2f\n", stats.AverageSalary)
	},
}
