package storage

import (
	"fmt"
	"strings"

	internal "github.com/frahmantamala/payroll-management/internal"
	employeeDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/payroll-management/internal/employee"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database. The engine is a
// configuration choice: sqlite for the single-user desktop deployment,
// postgres for shared installs.
func Open(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Dialect {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", cfg.Dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	return db, nil
}

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

// EnsureSchema creates the employees relation when absent. AutoMigrate
// only adds what is missing, so repeated calls are harmless.
func (r *EmployeeRepository) EnsureSchema() error {
	return r.db.AutoMigrate(&employeeDatamodel.Employee{})
}

// hasTable reports whether the employees relation exists yet. Reads
// against a fresh database behave as an empty roster; the schema is
// only bootstrapped on the first write.
func (r *EmployeeRepository) hasTable() bool {
	return r.db.Migrator().HasTable(&employeeDatamodel.Employee{})
}

// List returns records ordered by primary key, optionally narrowed to
// active ones.
func (r *EmployeeRepository) List(filter employee.Filter) ([]*employee.Employee, error) {
	if !r.hasTable() {
		return []*employee.Employee{}, nil
	}
	var records []*employeeDatamodel.Employee
	query := r.db.Order("id")
	if filter == employee.FilterActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, internal.NewStorageError("list employees", err)
	}
	return employee.FromDataModelSlice(records), nil
}

// Search matches a case-insensitive substring of name, position or
// department.
func (r *EmployeeRepository) Search(query string) ([]*employee.Employee, error) {
	if !r.hasTable() {
		return []*employee.Employee{}, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"
	var records []*employeeDatamodel.Employee
	err := r.db.
		Where("LOWER(full_name) LIKE ? OR LOWER(position) LIKE ? OR LOWER(department) LIKE ?",
			pattern, pattern, pattern).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, internal.NewStorageError("search employees", err)
	}
	return employee.FromDataModelSlice(records), nil
}

// GetByID retrieves an employee by its ID
func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	if !r.hasTable() {
		return nil, employee.ErrNotFound
	}
	var record employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrNotFound
		}
		return nil, internal.NewStorageError("get employee", err)
	}
	return employee.FromDataModel(&record), nil
}

// GetByFullName retrieves an employee by exact, case-sensitive name.
// Returns nil without an error when no record matches.
func (r *EmployeeRepository) GetByFullName(fullName string) (*employee.Employee, error) {
	if !r.hasTable() {
		return nil, nil
	}
	var record employeeDatamodel.Employee
	err := r.db.Where("full_name = ?", fullName).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, internal.NewStorageError("get employee by name", err)
	}
	return employee.FromDataModel(&record), nil
}

// Create saves a new employee and writes the assigned id back.
func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	record := employee.ToDataModel(emp)
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewStorageError("create employee", err)
	}
	emp.ID = record.ID
	return nil
}

// Update persists the full record state under its existing id.
func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	record := employee.ToDataModel(emp)
	if err := r.db.Save(record).Error; err != nil {
		return internal.NewStorageError("update employee", err)
	}
	return nil
}

// Delete removes the record. Deleting an already absent id reports
// NotFound rather than succeeding silently.
func (r *EmployeeRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return internal.NewStorageError("delete employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return employee.ErrNotFound
	}
	return nil
}
