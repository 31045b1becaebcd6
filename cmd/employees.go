package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/payroll-management/internal/employee"
	"github.com/spf13/cobra"
)

var employeesAll bool

var employeesCmd = &cobra.Command{
	Use:   "employees [query]",
	Short: "List the roster, optionally filtered by a search query",
	Long: `List employees ordered by id. With a query argument, match it as a
case-insensitive substring of name, position or department instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		svc, err := buildServices(cfg)
		if err != nil {
			log.Fatalf("failed to init services: %v", err)
		}

		var employees []*employee.Employee
		if len(args) == 1 {
			employees, err = svc.employees.Search(args[0])
		} else {
			filter := employee.FilterActive
			if employeesAll {
				filter = employee.FilterAll
			}
			employees, err = svc.employees.List(filter)
		}
		if err != nil {
			log.Fatalf("failed to list employees: %v", err)
		}

		for _, emp := range employees {
			status := "active"
			if !emp.IsActive {
				status = "inactive"
			}
			fmt.Printf("%4d  %-30s %-20s %-15s %10.2f  %s\n",
				emp.ID, emp.FullName, emp.Position, emp.Department, emp.BaseSalary, status)
		}
		fmt.Printf("\n%d employees\n", len(employees))
	},
}

func init() {
	employeesCmd.Flags().BoolVar(&employeesAll, "all", false, "include inactive employees")
}
