package employee

import "time"

// Employee is the persistence model for the employees relation.
type Employee struct {
	ID          int64     `gorm:"primaryKey"`
	FullName    string    `gorm:"column:full_name;not null"`
	Position    string    `gorm:"column:position;not null"`
	BaseSalary  float64   `gorm:"column:base_salary;not null"`
	Department  string    `gorm:"column:department"`
	BankAccount string    `gorm:"column:bank_account"`
	TaxID       string    `gorm:"column:tax_id"`
	Email       string    `gorm:"column:email"`
	Phone       string    `gorm:"column:phone"`
	HireDate    string    `gorm:"column:hire_date"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}
