package employee

import (
	"log/slog"
	"sync"

	errors "github.com/frahmantamala/payroll-management/internal"
)

// Repository interface defines the data access methods for employees
type Repository interface {
	EnsureSchema() error
	List(filter Filter) ([]*Employee, error)
	Search(query string) ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	GetByFullName(fullName string) (*Employee, error)
	Create(emp *Employee) error
	Update(emp *Employee) error
	Delete(id int64) error
}

// Service owns the persisted employee collection; every mutation passes
// through here and commits on its own.
type Service struct {
	repo       Repository
	logger     *slog.Logger
	schemaOnce sync.Once
	schemaErr  error
}

// NewService creates a new employee store service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ensureSchema bootstraps the employees relation lazily, before the
// first write. Idempotent and never destructive.
func (s *Service) ensureSchema() error {
	s.schemaOnce.Do(func() {
		s.schemaErr = s.repo.EnsureSchema()
	})
	if s.schemaErr != nil {
		return errors.NewStorageError("schema bootstrap failed", s.schemaErr)
	}
	return nil
}

// List returns matching records ordered by primary key.
func (s *Service) List(filter Filter) ([]*Employee, error) {
	employees, err := s.repo.List(filter)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err, "filter", filter)
		return nil, err
	}
	return employees, nil
}

// Search matches the query as a case-insensitive substring of name,
// position or department, over active and inactive records alike.
func (s *Service) Search(query string) ([]*Employee, error) {
	employees, err := s.repo.Search(query)
	if err != nil {
		s.logger.Error("employee search failed", "error", err, "query", query)
		return nil, err
	}
	return employees, nil
}

func (s *Service) Get(id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrNotFound
	}
	return emp, nil
}

// GetByFullName looks up a record by its exact name. Returns nil without
// an error when no record matches; the importer relies on that.
func (s *Service) GetByFullName(fullName string) (*Employee, error) {
	return s.repo.GetByFullName(fullName)
}

func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "full_name", dto.FullName)
		return nil, err
	}

	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	emp := NewEmployee(dto)
	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "full_name", dto.FullName)
		return nil, err
	}

	s.logger.Info("employee created",
		"employee_id", emp.ID,
		"full_name", emp.FullName,
		"department", emp.Department)

	return emp, nil
}

// Update merges the partial dto into the stored record and re-validates
// the merged result before persisting.
func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	emp, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	emp.ApplyUpdate(dto)

	if err := (CreateEmployeeDTO{FullName: emp.FullName, BaseSalary: emp.BaseSalary}).Validate(); err != nil {
		s.logger.Error("employee update validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", id, "full_name", emp.FullName)

	return emp, nil
}

// Delete removes the record for good. There are no cascades: payroll
// batches are ephemeral and never reference a stored id.
func (s *Service) Delete(id int64) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.IsNotFound(err) {
			s.logger.Warn("delete of missing employee", "employee_id", id)
		} else {
			s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		}
		return err
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

// Stats aggregates roster counts and the active payroll fund.
func (s *Service) Stats() (*Stats, error) {
	employees, err := s.repo.List(FilterAll)
	if err != nil {
		s.logger.Error("failed to compute roster stats", "error", err)
		return nil, err
	}

	stats := &Stats{TotalEmployees: len(employees)}
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}
		stats.ActiveEmployees++
		stats.PayrollFund += emp.BaseSalary
	}
	if stats.ActiveEmployees > 0 {
		stats.AverageSalary = stats.PayrollFund / float64(stats.ActiveEmployees)
	}
	return stats, nil
}
