package payroll

import (
	"fmt"

	internal "github.com/frahmantamala/payroll-management/internal"
)

// PeriodParams are the attendance and performance inputs for one
// payroll run. One set of parameters applies to every employee in the
// run, the way the original payroll screen worked.
type PeriodParams struct {
	Month         string  `json:"month"`
	TotalDays     int     `json:"total_days"`
	WorkedDays    int     `json:"worked_days"`
	KPITier       string  `json:"kpi_tier"`
	OvertimeHours float64 `json:"overtime_hours"`
}

func (p PeriodParams) Validate() error {
	if p.TotalDays <= 0 {
		return internal.NewInvalidPeriodError(
			fmt.Sprintf("total days must be positive, got %d", p.TotalDays),
			internal.ErrCodeInvalidTotalDays)
	}
	if p.WorkedDays < 0 {
		return internal.NewInvalidPeriodError(
			fmt.Sprintf("worked days must not be negative, got %d", p.WorkedDays),
			internal.ErrCodeNegativeWorkedDays)
	}
	if p.OvertimeHours < 0 {
		return internal.NewInvalidPeriodError(
			fmt.Sprintf("overtime hours must not be negative, got %g", p.OvertimeHours),
			internal.ErrCodeInvalidPeriodParams)
	}
	return nil
}

// LineItem is one employee's computed pay for a run. Never persisted;
// recomputed from the current employee snapshot every time.
type LineItem struct {
	EmployeeID  int64   `json:"employee_id"`
	FullName    string  `json:"full_name"`
	BasePay     float64 `json:"base_pay"`
	Bonus       float64 `json:"bonus"`
	OvertimePay float64 `json:"overtime_pay"`
	GrossIncome float64 `json:"gross_income"`
	TaxWithheld float64 `json:"tax_withheld"`
	NetPay      float64 `json:"net_pay"`
}

// Batch is the result of one payroll run: the line items in store order
// plus the three aggregate totals.
type Batch struct {
	ID         string     `json:"id"`
	Month      string     `json:"month"`
	Items      []LineItem `json:"items"`
	GrossTotal float64    `json:"gross_total"`
	TaxTotal   float64    `json:"tax_total"`
	NetTotal   float64    `json:"net_total"`
}
