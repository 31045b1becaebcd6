package employee

import (
	errors "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/core/common/validation"
)

// Filter narrows List results to active employees or the whole roster.
type Filter string

const (
	FilterActive Filter = "active"
	FilterAll    Filter = "all"
)

// CreateEmployeeDTO carries the fields for a new record; the store
// assigns the id.
type CreateEmployeeDTO struct {
	FullName    string  `json:"full_name"`
	Position    string  `json:"position"`
	BaseSalary  float64 `json:"base_salary"`
	Department  string  `json:"department"`
	BankAccount string  `json:"bank_account"`
	TaxID       string  `json:"tax_id"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	HireDate    string  `json:"hire_date"`
	IsActive    bool    `json:"is_active"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if err := validation.ValidateFullName(dto.FullName); err != nil {
		return err
	}
	if err := validation.ValidateBaseSalary(dto.BaseSalary); err != nil {
		return err
	}
	return nil
}

// UpdateEmployeeDTO is a partial update: nil fields stay untouched.
type UpdateEmployeeDTO struct {
	FullName    *string  `json:"full_name,omitempty"`
	Position    *string  `json:"position,omitempty"`
	BaseSalary  *float64 `json:"base_salary,omitempty"`
	Department  *string  `json:"department,omitempty"`
	BankAccount *string  `json:"bank_account,omitempty"`
	TaxID       *string  `json:"tax_id,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	HireDate    *string  `json:"hire_date,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// Stats summarizes the roster the way the original dashboard did:
// headcount, active headcount, total active payroll fund and average
// active salary.
type Stats struct {
	TotalEmployees  int     `json:"total_employees"`
	ActiveEmployees int     `json:"active_employees"`
	PayrollFund     float64 `json:"payroll_fund"`
	AverageSalary   float64 `json:"average_salary"`
}

// Domain errors
var (
	ErrNotFound = errors.ErrEmployeeNotFound
)
