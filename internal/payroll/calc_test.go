package payroll_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/employee"
	"github.com/frahmantamala/payroll-management/internal/payroll"
)

func defaultPayrollConfig() internal.PayrollConfig {
	return internal.PayrollConfig{
		TaxRate:              internal.DefaultTaxRate,
		OvertimeMultiplier:   internal.DefaultOvertimeMultiplier,
		StandardMonthlyHours: internal.DefaultStandardMonthlyHours,
	}
}

var _ = Describe("Calculator", func() {
	var calc *payroll.Calculator

	BeforeEach(func() {
		calc = payroll.NewCalculator(defaultPayrollConfig())
	})

	Describe("BasePay", func() {
		It("prorates the monthly salary over attendance", func() {
			emp := &employee.Employee{BaseSalary: 66000}

			basePay, err := calc.BasePay(emp, 20, 22)

			Expect(err).NotTo(HaveOccurred())
			Expect(basePay).To(BeNumerically("~", 60000, 1e-9))
		})

		It("pays the full salary for full attendance", func() {
			emp := &employee.Employee{BaseSalary: 50000}

			basePay, err := calc.BasePay(emp, 22, 22)

			Expect(err).NotTo(HaveOccurred())
			Expect(basePay).To(BeNumerically("~", 50000, 1e-9))
		})

		It("accepts worked days above total days", func() {
			emp := &employee.Employee{BaseSalary: 44000}

			basePay, err := calc.BasePay(emp, 24, 22)

			Expect(err).NotTo(HaveOccurred())
			Expect(basePay).To(BeNumerically(">", 44000))
		})

		It("rejects a zero-day period instead of dividing by zero", func() {
			emp := &employee.Employee{BaseSalary: 66000}

			_, err := calc.BasePay(emp, 10, 0)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidPeriod))
		})

		It("rejects negative total days", func() {
			emp := &employee.Employee{BaseSalary: 66000}

			_, err := calc.BasePay(emp, 10, -22)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidPeriod))
		})

		It("rejects negative worked days", func() {
			emp := &employee.Employee{BaseSalary: 66000}

			_, err := calc.BasePay(emp, -1, 22)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeNegativeWorkedDays))
		})
	})

	Describe("Bonus", func() {
		emp := &employee.Employee{BaseSalary: 66000}

		It("maps tier A to 30 percent of base salary", func() {
			Expect(calc.Bonus(emp, "A")).To(BeNumerically("~", 19800, 1e-9))
		})

		It("maps tier B to 15 percent of base salary", func() {
			Expect(calc.Bonus(emp, "B")).To(BeNumerically("~", 9900, 1e-9))
		})

		It("maps tier C to 5 percent of base salary", func() {
			Expect(calc.Bonus(emp, "C")).To(BeNumerically("~", 3300, 1e-9))
		})

		It("maps tier D to nothing", func() {
			Expect(calc.Bonus(emp, "D")).To(BeZero())
		})

		It("defaults an unknown tier to zero without failing", func() {
			Expect(calc.Bonus(emp, "Z")).To(BeZero())
			Expect(calc.Bonus(emp, "")).To(BeZero())
		})
	})

	Describe("OvertimePay", func() {
		It("multiplies hours, rate and the configured multiplier", func() {
			emp := &employee.Employee{BaseSalary: 66000}

			rate := calc.HourlyRate(emp)
			Expect(rate).To(BeNumerically("~", 375, 1e-9))

			Expect(calc.OvertimePay(5, rate)).To(BeNumerically("~", 2812.5, 1e-9))
		})

		It("pays nothing for zero hours", func() {
			Expect(calc.OvertimePay(0, 375)).To(BeZero())
		})
	})

	Describe("GrossIncome", func() {
		It("sums every component", func() {
			Expect(calc.GrossIncome(60000, 9900, 2812.5, 0, 0)).To(BeNumerically("~", 72712.5, 1e-9))
		})

		It("includes sick and vacation pay when supplied", func() {
			Expect(calc.GrossIncome(100, 10, 5, 20, 30)).To(BeNumerically("~", 165, 1e-9))
		})
	})
})

var _ = Describe("TaxService", func() {
	It("rejects a negative rate", func() {
		_, err := payroll.NewTaxService(-0.01)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a rate above one", func() {
		_, err := payroll.NewTaxService(1.01)
		Expect(err).To(HaveOccurred())
	})

	It("accepts the boundary rates", func() {
		_, err := payroll.NewTaxService(0)
		Expect(err).NotTo(HaveOccurred())
		_, err = payroll.NewTaxService(1)
		Expect(err).NotTo(HaveOccurred())
	})

	It("withholds a flat fraction of gross income", func() {
		taxes, err := payroll.NewTaxService(0.13)
		Expect(err).NotTo(HaveOccurred())

		Expect(taxes.Withholding(72712.5)).To(BeNumerically("~", 9452.625, 1e-9))
	})

	It("keeps the withholding algebra consistent across rates", func() {
		for _, rate := range []float64{0, 0.13, 0.5, 1} {
			taxes, err := payroll.NewTaxService(rate)
			Expect(err).NotTo(HaveOccurred())

			for _, gross := range []float64{0, 100, 66000, 72712.5} {
				tax := taxes.Withholding(gross)
				Expect(tax).To(BeNumerically("~", gross*rate, 1e-9))
				Expect(taxes.NetPay(gross, tax)).To(BeNumerically("~", gross-gross*rate, 1e-9))
			}
		}
	})

	It("never produces negative net pay from its own withholding", func() {
		taxes, err := payroll.NewTaxService(1)
		Expect(err).NotTo(HaveOccurred())

		net := taxes.NetPay(1000, taxes.Withholding(1000))
		Expect(net).To(BeNumerically(">=", 0))
	})
})
