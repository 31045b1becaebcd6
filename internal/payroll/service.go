package payroll

import (
	"log/slog"

	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/employee"
	"github.com/google/uuid"
)

// EmployeeSource is the slice of the employee store the payroll run
// reads from.
type EmployeeSource interface {
	List(filter employee.Filter) ([]*employee.Employee, error)
	Get(id int64) (*employee.Employee, error)
}

// Service runs payroll batches over the current employee snapshot.
type Service struct {
	employees  EmployeeSource
	calculator *Calculator
	taxes      *TaxService
	logger     *slog.Logger
}

func NewService(employees EmployeeSource, calculator *Calculator, taxes *TaxService, logger *slog.Logger) *Service {
	return &Service{
		employees:  employees,
		calculator: calculator,
		taxes:      taxes,
		logger:     logger,
	}
}

// RunAll computes a batch over every active employee, in store order.
func (s *Service) RunAll(params PeriodParams) (*Batch, error) {
	if err := params.Validate(); err != nil {
		s.logger.Error("invalid period parameters", "error", err, "month", params.Month)
		return nil, err
	}

	employees, err := s.employees.List(employee.FilterActive)
	if err != nil {
		s.logger.Error("failed to load active employees", "error", err)
		return nil, err
	}

	batch, err := s.compute(params, employees)
	if err != nil {
		return nil, err
	}

	s.logger.Info("payroll batch computed",
		"batch_id", batch.ID,
		"month", batch.Month,
		"employees", len(batch.Items),
		"net_total", batch.NetTotal)

	return batch, nil
}

// RunSelected computes a batch over the given employee ids only. Ids
// that no longer resolve to a record are skipped, mirroring how the
// original treated stale list selections; any other store failure
// aborts the run.
func (s *Service) RunSelected(params PeriodParams, ids []int64) (*Batch, error) {
	if err := params.Validate(); err != nil {
		s.logger.Error("invalid period parameters", "error", err, "month", params.Month)
		return nil, err
	}

	var employees []*employee.Employee
	for _, id := range ids {
		emp, err := s.employees.Get(id)
		if err != nil {
			if internal.IsNotFound(err) {
				s.logger.Warn("skipping unknown employee in selection", "employee_id", id)
				continue
			}
			s.logger.Error("failed to load selected employee", "error", err, "employee_id", id)
			return nil, err
		}
		employees = append(employees, emp)
	}

	batch, err := s.compute(params, employees)
	if err != nil {
		return nil, err
	}

	s.logger.Info("payroll batch computed for selection",
		"batch_id", batch.ID,
		"month", batch.Month,
		"requested", len(ids),
		"computed", len(batch.Items))

	return batch, nil
}

func (s *Service) compute(params PeriodParams, employees []*employee.Employee) (*Batch, error) {
	batch := &Batch{
		ID:    uuid.New().String(),
		Month: params.Month,
		Items: make([]LineItem, 0, len(employees)),
	}

	for _, emp := range employees {
		basePay, err := s.calculator.BasePay(emp, params.WorkedDays, params.TotalDays)
		if err != nil {
			return nil, err
		}

		bonus := s.calculator.Bonus(emp, params.KPITier)
		overtimePay := s.calculator.OvertimePay(params.OvertimeHours, s.calculator.HourlyRate(emp))
		gross := s.calculator.GrossIncome(basePay, bonus, overtimePay, 0, 0)
		tax := s.taxes.Withholding(gross)
		net := s.taxes.NetPay(gross, tax)

		batch.Items = append(batch.Items, LineItem{
			EmployeeID:  emp.ID,
			FullName:    emp.FullName,
			BasePay:     basePay,
			Bonus:       bonus,
			OvertimePay: overtimePay,
			GrossIncome: gross,
			TaxWithheld: tax,
			NetPay:      net,
		})

		batch.GrossTotal += gross
		batch.TaxTotal += tax
		batch.NetTotal += net
	}

	return batch, nil
}
