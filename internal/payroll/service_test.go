package payroll_test

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/employee"
	"github.com/frahmantamala/payroll-management/internal/payroll"
)

// mockEmployeeSource implements payroll.EmployeeSource for testing
type mockEmployeeSource struct {
	employees []*employee.Employee
	listError error
	getError  error
}

func (m *mockEmployeeSource) List(filter employee.Filter) ([]*employee.Employee, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var result []*employee.Employee
	for _, emp := range m.employees {
		if filter == employee.FilterActive && !emp.IsActive {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (m *mockEmployeeSource) Get(id int64) (*employee.Employee, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, emp := range m.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return nil, employee.ErrNotFound
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Payroll Service", func() {
	var (
		source  *mockEmployeeSource
		service *payroll.Service
	)

	newService := func() *payroll.Service {
		taxes, err := payroll.NewTaxService(0.13)
		Expect(err).NotTo(HaveOccurred())
		return payroll.NewService(source, payroll.NewCalculator(defaultPayrollConfig()), taxes, quietLogger())
	}

	BeforeEach(func() {
		source = &mockEmployeeSource{
			employees: []*employee.Employee{
				{ID: 1, FullName: "Petrova Anna", BaseSalary: 66000, IsActive: true},
				{ID: 2, FullName: "Sidorov Petr", BaseSalary: 44000, IsActive: true},
				{ID: 3, FullName: "Former Employee", BaseSalary: 99000, IsActive: false},
			},
		}
		service = newService()
	})

	Describe("RunAll", func() {
		It("computes the documented worked example", func() {
			source.employees = source.employees[:1]
			service = newService()

			batch, err := service.RunAll(payroll.PeriodParams{
				Month:         "2026-08",
				TotalDays:     22,
				WorkedDays:    20,
				KPITier:       "B",
				OvertimeHours: 5,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(batch.Items).To(HaveLen(1))

			item := batch.Items[0]
			Expect(item.BasePay).To(BeNumerically("~", 60000, 1e-6))
			Expect(item.Bonus).To(BeNumerically("~", 9900, 1e-6))
			Expect(item.OvertimePay).To(BeNumerically("~", 2812.5, 1e-6))
			Expect(item.GrossIncome).To(BeNumerically("~", 72712.5, 1e-6))
			Expect(item.TaxWithheld).To(BeNumerically("~", 9452.625, 1e-6))
			Expect(item.NetPay).To(BeNumerically("~", 63259.875, 1e-6))
		})

		It("skips inactive employees", func() {
			batch, err := service.RunAll(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 22})

			Expect(err).NotTo(HaveOccurred())
			Expect(batch.Items).To(HaveLen(2))
			for _, item := range batch.Items {
				Expect(item.FullName).NotTo(Equal("Former Employee"))
			}
		})

		It("sums the three batch totals over the line items", func() {
			batch, err := service.RunAll(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 22})

			Expect(err).NotTo(HaveOccurred())

			var gross, tax, net float64
			for _, item := range batch.Items {
				gross += item.GrossIncome
				tax += item.TaxWithheld
				net += item.NetPay
			}
			Expect(batch.GrossTotal).To(BeNumerically("~", gross, 1e-9))
			Expect(batch.TaxTotal).To(BeNumerically("~", tax, 1e-9))
			Expect(batch.NetTotal).To(BeNumerically("~", net, 1e-9))
			Expect(batch.ID).NotTo(BeEmpty())
		})

		It("invariant holds per line: gross minus tax equals net", func() {
			batch, err := service.RunAll(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 20, KPITier: "A", OvertimeHours: 3})

			Expect(err).NotTo(HaveOccurred())
			for _, item := range batch.Items {
				Expect(item.GrossIncome).To(BeNumerically("~", item.BasePay+item.Bonus+item.OvertimePay, 1e-9))
				Expect(item.NetPay).To(BeNumerically("~", item.GrossIncome-item.TaxWithheld, 1e-9))
			}
		})

		It("rejects a non-positive period before touching the store", func() {
			_, err := service.RunAll(payroll.PeriodParams{Month: "2026-08", TotalDays: 0, WorkedDays: 10})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidPeriod))
		})

		It("rejects negative overtime hours", func() {
			_, err := service.RunAll(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 22, OvertimeHours: -1})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidPeriod))
		})
	})

	Describe("RunSelected", func() {
		It("computes only the requested ids", func() {
			batch, err := service.RunSelected(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 22}, []int64{2})

			Expect(err).NotTo(HaveOccurred())
			Expect(batch.Items).To(HaveLen(1))
			Expect(batch.Items[0].EmployeeID).To(Equal(int64(2)))
		})

		It("silently skips ids that no longer resolve", func() {
			batch, err := service.RunSelected(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 22}, []int64{1, 999})

			Expect(err).NotTo(HaveOccurred())
			Expect(batch.Items).To(HaveLen(1))
		})

		It("surfaces a store failure instead of treating it as an unknown id", func() {
			source.getError = internal.NewStorageError("load employee", nil)

			batch, err := service.RunSelected(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 22}, []int64{1, 2})

			Expect(batch).To(BeNil())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})

	Describe("ExportCSV", func() {
		It("writes the fixed header and bare amounts", func() {
			batch, err := service.RunAll(payroll.PeriodParams{Month: "2026-08", TotalDays: 22, WorkedDays: 20, KPITier: "B", OvertimeHours: 5})
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(payroll.ExportCSV(batch, &buf)).To(Succeed())

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			Expect(lines[0]).To(Equal("name;base pay;bonus;overtime;gross;tax;net"))
			Expect(lines).To(HaveLen(len(batch.Items) + 1))
			Expect(lines[1]).To(ContainSubstring("Petrova Anna;60000.00;9900.00;2812.50;72712.50;9452.62;63259.88"))
			Expect(buf.String()).NotTo(ContainSubstring("₽"))
		})
	})
})
