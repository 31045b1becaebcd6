package payroll

import (
	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/core/common/validation"
)

// TaxService withholds personal income tax as a flat fraction of gross
// income.
type TaxService struct {
	rate float64
}

// NewTaxService rejects rates outside [0, 1].
func NewTaxService(rate float64) (*TaxService, error) {
	if err := validation.ValidateTaxRate(rate); err != nil {
		return nil, internal.ErrInvalidTaxRate
	}
	return &TaxService{rate: rate}, nil
}

func (t *TaxService) Rate() float64 {
	return t.rate
}

func (t *TaxService) Withholding(grossIncome float64) float64 {
	return grossIncome * t.rate
}

func (t *TaxService) NetPay(grossIncome, taxWithheld float64) float64 {
	return grossIncome - taxWithheld
}
