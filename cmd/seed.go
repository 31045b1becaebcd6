package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/payroll-management/internal/employee"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a sample roster for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		svc, err := buildServices(cfg)
		if err != nil {
			log.Fatalf("failed to init services: %v", err)
		}

		roster := []employee.CreateEmployeeDTO{
			{FullName: "Ivanov Ivan Ivanovich", Position: "Lead Engineer", BaseSalary: 95000, Department: "Engineering", TaxID: "770312345678", BankAccount: "40817810000000000001", HireDate: "2021-03-15", IsActive: true},
			{FullName: "Petrova Anna Sergeevna", Position: "Accountant", BaseSalary: 66000, Department: "Finance", TaxID: "770398765432", BankAccount: "40817810000000000002", HireDate: "2022-07-01", IsActive: true},
			{FullName: "Sidorov Petr Alekseevich", Position: "Sales Manager", BaseSalary: 58000, Department: "Sales", TaxID: "770311122233", BankAccount: "40817810000000000003", HireDate: "2023-01-20", IsActive: true},
			{FullName: "Kuznetsova Olga Dmitrievna", Position: "HR Specialist", BaseSalary: 52000, Department: "HR", TaxID: "770344455566", HireDate: "2020-11-02", IsActive: false},
		}

		for _, dto := range roster {
			existing, err := svc.employees.GetByFullName(dto.FullName)
			if err != nil {
				log.Fatalf("failed to check existing employee: %v", err)
			}
			if existing != nil {
				fmt.Printf("employee %q already exists, skipping\n", dto.FullName)
				continue
			}
			created, err := svc.employees.Create(dto)
			if err != nil {
				log.Fatalf("failed to seed employee %q: %v", dto.FullName, err)
			}
			fmt.Printf("Seeded employee %d: %s\n", created.ID, created.FullName)
		}
	},
}
