package reports

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/employee"
)

type Kind string

const (
	KindPayrollStatement Kind = "payroll_statement"
	KindEmployeeRoster   Kind = "employee_roster"
	KindTaxReport        Kind = "tax_report"
	KindDepartmentReport Kind = "department_report"
)

// Report is one rendered text block, ready for display or flat-file
// export.
type Report struct {
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Content     string    `json:"content"`
}

// EmployeeSource is the read-only slice of the store the reports pull
// from.
type EmployeeSource interface {
	List(filter employee.Filter) ([]*employee.Employee, error)
}

// Service renders the four fixed report layouts.
type Service struct {
	employees EmployeeSource
	taxRate   float64
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(employees EmployeeSource, taxRate float64, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		taxRate:   taxRate,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate builds the requested report over the active roster.
func (s *Service) Generate(kind Kind) (*Report, error) {
	employees, err := s.employees.List(employee.FilterActive)
	if err != nil {
		s.logger.Error("failed to load employees for report", "error", err, "kind", kind)
		return nil, err
	}

	generatedAt := s.now()

	var title, content string
	switch kind {
	case KindPayrollStatement:
		title = "PAYROLL STATEMENT"
		content = s.payrollStatement(employees, generatedAt)
	case KindEmployeeRoster:
		title = "EMPLOYEE ROSTER"
		content = s.employeeRoster(employees, generatedAt)
	case KindTaxReport:
		title = "TAX REPORT (NDFL)"
		content = s.taxReport(employees, generatedAt)
	case KindDepartmentReport:
		title = "DEPARTMENT REPORT"
		content = s.departmentReport(employees, generatedAt)
	default:
		return nil, internal.NewValidationError(
			fmt.Sprintf("unknown report kind %q", kind), internal.ErrCodeValidationFailed)
	}

	s.logger.Info("report generated", "kind", kind, "employees", len(employees))

	return &Report{
		Kind:        kind,
		Title:       title,
		GeneratedAt: generatedAt,
		Content:     content,
	}, nil
}

func banner(title string, lines ...string) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n\n")
	return b.String()
}

func sortByDepartmentName(employees []*employee.Employee) {
	sort.SliceStable(employees, func(i, j int) bool {
		if employees[i].Department != employees[j].Department {
			return employees[i].Department < employees[j].Department
		}
		return employees[i].FullName < employees[j].FullName
	})
}

// payrollStatement lists each active employee in block form with a
// trailing payroll fund total.
func (s *Service) payrollStatement(employees []*employee.Employee, generatedAt time.Time) string {
	sorted := append([]*employee.Employee(nil), employees...)
	sortByDepartmentName(sorted)

	var b strings.Builder
	b.WriteString(banner("PAYROLL STATEMENT",
		fmt.Sprintf("Generated: %s", generatedAt.Format("02.01.2006 15:04")),
		fmt.Sprintf("Employees: %d", len(sorted)),
	))

	var totalSalary float64
	for _, emp := range sorted {
		b.WriteString(fmt.Sprintf("Name: %s\n", emp.FullName))
		b.WriteString(fmt.Sprintf("Position: %s\n", emp.Position))
		b.WriteString(fmt.Sprintf("Department: %s\n", emp.Department))
		b.WriteString(fmt.Sprintf("Base salary: %s\n", money(emp.BaseSalary, 2)))
		b.WriteString(fmt.Sprintf("Bank account: %s\n", emp.BankAccount))
		b.WriteString(fmt.Sprintf("Tax ID: %s\n", emp.TaxID))
		b.WriteString(strings.Repeat("-", 30))
		b.WriteString("\n")
		totalSalary += emp.BaseSalary
	}

	b.WriteString(fmt.Sprintf("\nTOTAL PAYROLL FUND: %s\n", money(totalSalary, 2)))
	return b.String()
}

// employeeRoster renders the fixed-width roster table.
func (s *Service) employeeRoster(employees []*employee.Employee, generatedAt time.Time) string {
	sorted := append([]*employee.Employee(nil), employees...)
	sortByDepartmentName(sorted)

	cols := []column{
		{label: "Name", width: 30},
		{label: "Position", width: 20},
		{label: "Department", width: 15},
		{label: "Salary", width: 14, alignRight: true},
		{label: "Hired", width: 12},
	}

	rows := make([][]string, len(sorted))
	for i, emp := range sorted {
		rows[i] = []string{
			emp.FullName,
			emp.Position,
			emp.Department,
			money(emp.BaseSalary, 0),
			emp.HireDate,
		}
	}

	var b strings.Builder
	b.WriteString(banner("EMPLOYEE ROSTER",
		fmt.Sprintf("Generated: %s", generatedAt.Format("02.01.2006")),
		fmt.Sprintf("Employees: %d", len(sorted)),
	))
	b.WriteString(renderTable(cols, rows))
	return b.String()
}

// taxReport computes withholding straight from base salary at the
// configured default rate; it does not run payroll.
func (s *Service) taxReport(employees []*employee.Employee, generatedAt time.Time) string {
	sorted := append([]*employee.Employee(nil), employees...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FullName < sorted[j].FullName
	})

	cols := []column{
		{label: "Name", width: 30},
		{label: "Tax ID", width: 15},
		{label: "Income", width: 16, alignRight: true},
		{label: "NDFL", width: 16, alignRight: true},
	}

	var totalIncome, totalTax float64
	rows := make([][]string, len(sorted))
	for i, emp := range sorted {
		tax := emp.BaseSalary * s.taxRate
		rows[i] = []string{
			emp.FullName,
			emp.TaxID,
			money(emp.BaseSalary, 2),
			money(tax, 2),
		}
		totalIncome += emp.BaseSalary
		totalTax += tax
	}

	var b strings.Builder
	b.WriteString(banner("TAX REPORT (NDFL)",
		fmt.Sprintf("Period: %s", generatedAt.Format("01.2006")),
		fmt.Sprintf("NDFL rate: %.0f%%", s.taxRate*100),
	))
	b.WriteString(renderTable(cols, rows))
	b.WriteString(strings.Repeat("-", tableWidth(cols)))
	b.WriteString("\n")
	b.WriteString(renderRow(cols, []string{"TOTAL:", "", money(totalIncome, 2), money(totalTax, 2)}))
	b.WriteString("\n")
	return b.String()
}

type departmentTotals struct {
	name        string
	count       int
	totalSalary float64
}

// departmentReport groups the active roster by department with count,
// fund and average salary per group.
func (s *Service) departmentReport(employees []*employee.Employee, generatedAt time.Time) string {
	byName := make(map[string]*departmentTotals)
	for _, emp := range employees {
		dept, ok := byName[emp.Department]
		if !ok {
			dept = &departmentTotals{name: emp.Department}
			byName[emp.Department] = dept
		}
		dept.count++
		dept.totalSalary += emp.BaseSalary
	}

	departments := make([]*departmentTotals, 0, len(byName))
	for _, dept := range byName {
		departments = append(departments, dept)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].name < departments[j].name
	})

	cols := []column{
		{label: "Department", width: 20},
		{label: "Staff", width: 6, alignRight: true},
		{label: "Fund", width: 14, alignRight: true},
		{label: "Average", width: 14, alignRight: true},
	}

	var totalCount int
	var totalSalary float64
	rows := make([][]string, len(departments))
	for i, dept := range departments {
		avg := dept.totalSalary / float64(dept.count)
		rows[i] = []string{
			dept.name,
			fmt.Sprintf("%d", dept.count),
			money(dept.totalSalary, 0),
			money(avg, 0),
		}
		totalCount += dept.count
		totalSalary += dept.totalSalary
	}

	var b strings.Builder
	b.WriteString(banner("DEPARTMENT REPORT",
		fmt.Sprintf("Generated: %s", generatedAt.Format("02.01.2006")),
	))
	b.WriteString(renderTable(cols, rows))
	b.WriteString(strings.Repeat("-", tableWidth(cols)))
	b.WriteString("\n")
	b.WriteString(renderRow(cols, []string{"TOTAL:", fmt.Sprintf("%d", totalCount), money(totalSalary, 0), ""}))
	b.WriteString("\n")
	return b.String()
}
