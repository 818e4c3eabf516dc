package service

import "lease-calculator/domain"

// Calculator keeps the result of its last successful calculation and exposes
// it through rounded accessors. A failed Calculate leaves the previous result
// in place.
//
// A Calculator is not safe for concurrent use. Use Calculate directly, or one
// Calculator per goroutine.
type Calculator struct {
	fees FeeLookup
	last *domain.LeaseResult
}

// NewCalculator creates a Calculator that resolves manufacturer fees from fees.
func NewCalculator(fees FeeLookup) *Calculator {
	return &Calculator{fees: fees}
}

// Calculate replaces the current result with the terms derived from input.
func (c *Calculator) Calculate(input domain.LeaseInput) error {
	result, err := Calculate(input, c.fees)
	if err != nil {
		return err
	}
	c.last = &result
	return nil
}

// Result returns the unrounded figures of the last calculation.
func (c *Calculator) Result() (domain.LeaseResult, error) {
	if c.last == nil {
		return domain.LeaseResult{}, domain.ErrNoCalculationPerformed
	}
	return *c.last, nil
}

func (c *Calculator) ResidualPercent() (int, error) {
	if c.last == nil {
		return 0, domain.ErrNoCalculationPerformed
	}
	return roundToInt(c.last.ResidualPercent), nil
}

func (c *Calculator) ResidualValue() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.ResidualAbsolute })
}

func (c *Calculator) MonthlyPaymentPreTax() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.MonthlyPaymentPreTax })
}

func (c *Calculator) MonthlyPayment() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.MonthlyPayment })
}

// DiscountOffMSRPPercent is the negotiated discount as a percentage of MSRP.
func (c *Calculator) DiscountOffMSRPPercent() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return discountOffMSRPPercent(*r) })
}

// MonthlyPaymentToMSRPPercent is the taxed monthly payment as a percentage of
// MSRP, the figure behind the "1% rule".
func (c *Calculator) MonthlyPaymentToMSRPPercent() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return monthlyPaymentToMSRPPercent(*r) })
}

func (c *Calculator) TotalLeaseCost() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.TotalLeaseCost })
}

func (c *Calculator) APR() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.AnnualPercentageRate })
}

func (c *Calculator) AcquisitionFee() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.AcquisitionFee })
}

func (c *Calculator) DispositionFee() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.DispositionFee })
}

func (c *Calculator) DriveOffPayment() (float64, error) {
	return c.rounded(func(r *domain.LeaseResult) float64 { return r.DriveOffPayment })
}

func (c *Calculator) rounded(field func(*domain.LeaseResult) float64) (float64, error) {
	if c.last == nil {
		return 0, domain.ErrNoCalculationPerformed
	}
	return roundTo2Decimals(field(c.last)), nil
}
