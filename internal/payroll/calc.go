package payroll

import (
	"fmt"

	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/employee"
)

// KPI tier to bonus fraction of base salary. Tiers outside the table
// earn no bonus; an unknown tier is not an error.
var bonusRates = map[string]float64{
	"A": 0.30,
	"B": 0.15,
	"C": 0.05,
	"D": 0.0,
}

// Calculator computes the gross pay components for one employee and one
// period. All methods are pure.
type Calculator struct {
	overtimeMultiplier   float64
	standardMonthlyHours float64
}

func NewCalculator(cfg internal.PayrollConfig) *Calculator {
	return &Calculator{
		overtimeMultiplier:   cfg.OvertimeMultiplier,
		standardMonthlyHours: cfg.StandardMonthlyHours,
	}
}

// BasePay prorates the monthly salary over attendance. Working more
// days than the period has is accepted; plausibility is the caller's
// concern.
func (c *Calculator) BasePay(emp *employee.Employee, workedDays, totalDays int) (float64, error) {
	if totalDays <= 0 {
		return 0, internal.NewInvalidPeriodError(
			fmt.Sprintf("total days must be positive, got %d", totalDays),
			internal.ErrCodeInvalidTotalDays)
	}
	if workedDays < 0 {
		return 0, internal.NewInvalidPeriodError(
			fmt.Sprintf("worked days must not be negative, got %d", workedDays),
			internal.ErrCodeNegativeWorkedDays)
	}
	dailySalary := emp.BaseSalary / float64(totalDays)
	return dailySalary * float64(workedDays), nil
}

// HourlyRate derives the overtime base from the monthly salary and the
// configured standard hours per month.
func (c *Calculator) HourlyRate(emp *employee.Employee) float64 {
	return emp.BaseSalary / c.standardMonthlyHours
}

func (c *Calculator) OvertimePay(overtimeHours, hourlyRate float64) float64 {
	return overtimeHours * hourlyRate * c.overtimeMultiplier
}

func (c *Calculator) Bonus(emp *employee.Employee, kpiTier string) float64 {
	return emp.BaseSalary * bonusRates[kpiTier]
}

func (c *Calculator) GrossIncome(basePay, bonus, overtimePay, sickPay, vacationPay float64) float64 {
	return basePay + bonus + overtimePay + sickPay + vacationPay
}
