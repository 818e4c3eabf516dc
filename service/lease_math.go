package service

import (
	"math"

	"lease-calculator/domain"
)

// FeeLookup resolves manufacturer fees by exact name.
type FeeLookup interface {
	LookupManufacturerFees(name string) (domain.ManufacturerFees, bool)
}

// Calculate derives the lease terms for input. It is a pure function of its
// arguments and is safe to call concurrently; fees may be nil.
func Calculate(input domain.LeaseInput, fees FeeLookup) (domain.LeaseResult, error) {
	if err := validateLeaseInput(input); err != nil {
		return domain.LeaseResult{}, err
	}
	method, treatment, err := resolveTaxMethod(input.TaxMethod)
	if err != nil {
		return domain.LeaseResult{}, err
	}

	term := input.LeaseTermMonths
	if term == 0 {
		term = DefaultLeaseTermMonths
	}
	months := float64(term)

	residualAbsolute, residualPercent := normalizeResidual(input)
	manufacturerFees := lookupFees(fees, input.Manufacturer)

	grossCapCost := input.SellingPrice + input.TotalFees
	capCostReduction := input.DownPayment + input.Rebates + input.TradeInValue
	adjustedCapCost := grossCapCost - capCostReduction + manufacturerFees.AcquisitionFee
	depreciation := adjustedCapCost - residualAbsolute
	basePayment := depreciation / months
	rentCharge := (adjustedCapCost + residualAbsolute) * input.MoneyFactor
	monthlyPaymentPreTax := basePayment + rentCharge

	taxRate := input.SalesTaxPercent / 100
	monthlyPayment := monthlyPaymentPreTax
	if treatment.appliesTaxToMonthlyPayment() {
		monthlyPayment = monthlyPaymentPreTax * (1 + taxRate)
	}

	taxableBase := treatment.taxableDriveOffBase(leaseFigures{
		sellingPrice:         input.SellingPrice,
		downPayment:          input.DownPayment,
		totalFees:            input.TotalFees,
		acquisitionFee:       manufacturerFees.AcquisitionFee,
		monthlyPaymentPreTax: monthlyPaymentPreTax,
	})
	driveOffTax := taxableBase * taxRate
	// The first month's payment is due at signing.
	driveOffPayment := driveOffTax + input.DownPayment + input.TotalFees + monthlyPayment

	// Month one is already inside driveOffPayment.
	totalLeaseCost := monthlyPayment*(months-1) + driveOffPayment + manufacturerFees.DispositionFee

	result := domain.LeaseResult{
		MSRP:                 input.MSRP,
		SellingPrice:         input.SellingPrice,
		LeaseTermMonths:      term,
		TaxMethod:            method,
		ResidualAbsolute:     residualAbsolute,
		ResidualPercent:      residualPercent,
		AnnualPercentageRate: input.MoneyFactor * MoneyFactorToAPR,
		MonthlyPaymentPreTax: monthlyPaymentPreTax,
		MonthlyPayment:       monthlyPayment,
		DriveOffTax:          driveOffTax,
		DriveOffPayment:      driveOffPayment,
		AcquisitionFee:       manufacturerFees.AcquisitionFee,
		DispositionFee:       manufacturerFees.DispositionFee,
		TotalLeaseCost:       totalLeaseCost,
	}
	if !isFinite(result) {
		return domain.LeaseResult{}, domain.ErrNonFiniteResult
	}
	return result, nil
}

// isFinite reports whether every figure Summarize reads, the derived
// percentages included, is a real number.
func isFinite(result domain.LeaseResult) bool {
	figures := []float64{
		result.ResidualAbsolute,
		result.ResidualPercent,
		result.AnnualPercentageRate,
		result.MonthlyPaymentPreTax,
		result.MonthlyPayment,
		result.DriveOffTax,
		result.DriveOffPayment,
		result.AcquisitionFee,
		result.DispositionFee,
		result.TotalLeaseCost,
		discountOffMSRPPercent(result),
		monthlyPaymentToMSRPPercent(result),
	}
	for _, v := range figures {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// validateLeaseInput checks the required fields in a fixed order and names
// the first one that is zero or NaN.
func validateLeaseInput(input domain.LeaseInput) error {
	required := []struct {
		label string
		value float64
	}{
		{domain.FieldMSRP, input.MSRP},
		{domain.FieldSellingPrice, input.SellingPrice},
		{domain.FieldResidualValue, input.ResidualValue},
		{domain.FieldMoneyFactor, input.MoneyFactor},
	}
	for _, field := range required {
		if field.value == 0 || math.IsNaN(field.value) {
			return &domain.InvalidInputError{Field: field.label}
		}
	}
	return nil
}

func normalizeResidual(input domain.LeaseInput) (absolute, percent float64) {
	if input.ResidualIsPercent == nil || *input.ResidualIsPercent {
		return input.MSRP * (input.ResidualValue / 100), input.ResidualValue
	}
	return input.ResidualValue, (input.ResidualValue / input.MSRP) * 100
}

func lookupFees(fees FeeLookup, manufacturer string) domain.ManufacturerFees {
	if fees == nil || manufacturer == "" {
		return domain.ManufacturerFees{}
	}
	found, ok := fees.LookupManufacturerFees(manufacturer)
	if !ok {
		return domain.ManufacturerFees{}
	}
	return found
}

// Summarize rounds every figure of result for presentation. It fails with
// domain.ErrNonFiniteResult rather than report an overflowed figure.
func Summarize(result domain.LeaseResult) (domain.LeaseSummary, error) {
	if !isFinite(result) {
		return domain.LeaseSummary{}, domain.ErrNonFiniteResult
	}
	return domain.LeaseSummary{
		TaxMethod:                   result.TaxMethod,
		LeaseTermMonths:             result.LeaseTermMonths,
		ResidualPercent:             roundToInt(result.ResidualPercent),
		ResidualValue:               roundTo2Decimals(result.ResidualAbsolute),
		APR:                         roundTo2Decimals(result.AnnualPercentageRate),
		MonthlyPaymentPreTax:        roundTo2Decimals(result.MonthlyPaymentPreTax),
		MonthlyPayment:              roundTo2Decimals(result.MonthlyPayment),
		DiscountOffMSRPPercent:      roundTo2Decimals(discountOffMSRPPercent(result)),
		MonthlyPaymentToMSRPPercent: roundTo2Decimals(monthlyPaymentToMSRPPercent(result)),
		DriveOffPayment:             roundTo2Decimals(result.DriveOffPayment),
		AcquisitionFee:              roundTo2Decimals(result.AcquisitionFee),
		DispositionFee:              roundTo2Decimals(result.DispositionFee),
		TotalLeaseCost:              roundTo2Decimals(result.TotalLeaseCost),
	}, nil
}

func discountOffMSRPPercent(result domain.LeaseResult) float64 {
	return (result.MSRP - result.SellingPrice) / result.MSRP * 100
}

func monthlyPaymentToMSRPPercent(result domain.LeaseResult) float64 {
	return result.MonthlyPayment / result.MSRP * 100
}
