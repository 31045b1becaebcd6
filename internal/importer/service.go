package importer

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/employee"
)

// EmployeeStore is the slice of the store the reconciler writes
// through. Every create or update commits on its own; there is no
// batch transaction and no rollback of rows already applied.
type EmployeeStore interface {
	GetByFullName(fullName string) (*employee.Employee, error)
	Create(dto employee.CreateEmployeeDTO) (*employee.Employee, error)
	Update(id int64, dto employee.UpdateEmployeeDTO) (*employee.Employee, error)
}

// Service merges external employee batches into the store. Records are
// matched by exact, case-sensitive full name; two people sharing a name
// are indistinguishable here.
type Service struct {
	store  EmployeeStore
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store EmployeeStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ImportFile parses the file by extension and reconciles its records.
func (s *Service) ImportFile(path string, opts Options) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, internal.NewImportFormatError("cannot open import file", internal.ErrCodeMalformedDocument).WithCause(err)
	}
	defer file.Close()

	var records []Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = ParseCSV(file)
	case ".json":
		records, err = ParseJSON(file)
	default:
		return nil, internal.NewImportFormatError("unsupported import format", internal.ErrCodeUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	return s.Reconcile(records, opts)
}

// Reconcile applies the batch in input order under the two policies.
// Rows that fail validation are skipped; a storage failure stops the
// batch but leaves rows already applied committed.
func (s *Service) Reconcile(records []Record, opts Options) (*Result, error) {
	result := &Result{}

	for _, rec := range records {
		if rec.FullName == "" {
			s.logger.Warn("skipping import record without a name")
			continue
		}

		existing, err := s.store.GetByFullName(rec.FullName)
		if err != nil {
			s.logger.Error("import lookup failed", "error", err, "full_name", rec.FullName)
			return result, err
		}

		switch {
		case existing != nil && opts.UpdateExisting:
			if err := s.updateExisting(existing, rec, result); err != nil {
				return result, err
			}
		case existing == nil && opts.CreateMissing:
			if err := s.createMissing(rec, result); err != nil {
				return result, err
			}
		default:
			// policy says leave this record alone
		}
	}

	s.logger.Info("import reconciled",
		"records", len(records),
		"created", result.CreatedCount,
		"updated", result.UpdatedCount)

	return result, nil
}

func (s *Service) updateExisting(existing *employee.Employee, rec Record, result *Result) error {
	dto := employee.UpdateEmployeeDTO{
		Position:    rec.Position,
		BaseSalary:  rec.BaseSalary,
		Department:  rec.Department,
		BankAccount: rec.BankAccount,
		TaxID:       rec.TaxID,
	}

	if _, err := s.store.Update(existing.ID, dto); err != nil {
		if _, ok := internal.IsAppError(err); ok && !isStorageError(err) {
			s.logger.Warn("skipping invalid import update", "error", err, "full_name", rec.FullName)
			return nil
		}
		return err
	}
	result.UpdatedCount++
	return nil
}

func (s *Service) createMissing(rec Record, result *Result) error {
	dto := employee.CreateEmployeeDTO{
		FullName: rec.FullName,
		HireDate: s.now().Format("2006-01-02"),
		IsActive: true,
	}
	if rec.Position != nil {
		dto.Position = *rec.Position
	}
	if rec.BaseSalary != nil {
		dto.BaseSalary = *rec.BaseSalary
	}
	if rec.Department != nil {
		dto.Department = *rec.Department
	}
	if rec.TaxID != nil {
		dto.TaxID = *rec.TaxID
	}
	if rec.BankAccount != nil {
		dto.BankAccount = *rec.BankAccount
	}

	if _, err := s.store.Create(dto); err != nil {
		if _, ok := internal.IsAppError(err); ok && !isStorageError(err) {
			s.logger.Warn("skipping invalid import record", "error", err, "full_name", rec.FullName)
			return nil
		}
		return err
	}
	result.CreatedCount++
	return nil
}

func isStorageError(err error) bool {
	if appErr, ok := internal.IsAppError(err); ok {
		return appErr.Type == internal.ErrorTypeStorage
	}
	return false
}
