package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/employee"
)

// Employee is the canonical record for one person on the roster. The id
// is assigned by the store on creation and never changes; inactive
// employees stay visible for record keeping but are excluded from
// payroll runs.
type Employee struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	Position    string    `json:"position"`
	BaseSalary  float64   `json:"base_salary"`
	Department  string    `json:"department"`
	BankAccount string    `json:"bank_account"`
	TaxID       string    `json:"tax_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	HireDate    string    `json:"hire_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEmployee(dto CreateEmployeeDTO) *Employee {
	return &Employee{
		FullName:    dto.FullName,
		Position:    dto.Position,
		BaseSalary:  dto.BaseSalary,
		Department:  dto.Department,
		BankAccount: dto.BankAccount,
		TaxID:       dto.TaxID,
		Email:       dto.Email,
		Phone:       dto.Phone,
		HireDate:    dto.HireDate,
		IsActive:    dto.IsActive,
		CreatedAt:   time.Now(),
	}
}

// ApplyUpdate merges the non-nil fields of the partial update into the
// record. Validation runs on the merged result, not here.
func (e *Employee) ApplyUpdate(dto UpdateEmployeeDTO) {
	if dto.FullName != nil {
		e.FullName = *dto.FullName
	}
	if dto.Position != nil {
		e.Position = *dto.Position
	}
	if dto.BaseSalary != nil {
		e.BaseSalary = *dto.BaseSalary
	}
	if dto.Department != nil {
		e.Department = *dto.Department
	}
	if dto.BankAccount != nil {
		e.BankAccount = *dto.BankAccount
	}
	if dto.TaxID != nil {
		e.TaxID = *dto.TaxID
	}
	if dto.Email != nil {
		e.Email = *dto.Email
	}
	if dto.Phone != nil {
		e.Phone = *dto.Phone
	}
	if dto.HireDate != nil {
		e.HireDate = *dto.HireDate
	}
	if dto.IsActive != nil {
		e.IsActive = *dto.IsActive
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:          e.ID,
		FullName:    e.FullName,
		Position:    e.Position,
		BaseSalary:  e.BaseSalary,
		Department:  e.Department,
		BankAccount: e.BankAccount,
		TaxID:       e.TaxID,
		Email:       e.Email,
		Phone:       e.Phone,
		HireDate:    e.HireDate,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:          e.ID,
		FullName:    e.FullName,
		Position:    e.Position,
		BaseSalary:  e.BaseSalary,
		Department:  e.Department,
		BankAccount: e.BankAccount,
		TaxID:       e.TaxID,
		Email:       e.Email,
		Phone:       e.Phone,
		HireDate:    e.HireDate,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
