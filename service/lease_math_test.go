package service

import (
	"errors"
	"math"
	"testing"

	"lease-calculator/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_ZeroDown(t *testing.T) {
	result, err := Calculate(zeroDownLease(), nil)
	require.NoError(t, err)

	summary := mustSummarize(t, result)
	assert.Equal(t, 282.12, summary.MonthlyPaymentPreTax)
	assert.Equal(t, 299.76, summary.MonthlyPayment)
	assert.Equal(t, 3.0, summary.APR)
	assert.Equal(t, 8.7, summary.DiscountOffMSRPPercent)
	assert.Equal(t, 1.3, summary.MonthlyPaymentToMSRPPercent)
	assert.Equal(t, 13110.0, summary.ResidualValue)
	assert.Equal(t, 57, summary.ResidualPercent)
	assert.Equal(t, 1574.76, summary.DriveOffPayment)
	assert.Equal(t, 12066.23, summary.TotalLeaseCost)
	assert.Equal(t, domain.TaxOnMonthlyPayment, summary.TaxMethod)
}

func TestCalculate_WithDownPayment(t *testing.T) {
	result, err := Calculate(withDownLease(), nil)
	require.NoError(t, err)

	summary := mustSummarize(t, result)
	assert.Equal(t, 247.32, summary.MonthlyPayment)
	assert.Equal(t, 232.78, summary.MonthlyPaymentPreTax)
	assert.Equal(t, 3328.57, summary.DriveOffPayment)
}

func TestCalculate_PercentResidual(t *testing.T) {
	result, err := Calculate(percentResidualLease(), nil)
	require.NoError(t, err)

	summary := mustSummarize(t, result)
	assert.Equal(t, 13110.0, summary.ResidualValue)
	assert.Equal(t, 57, summary.ResidualPercent)
	assert.Equal(t, 299.76, summary.MonthlyPayment)
}

func TestCalculate_ResidualRoundTrip(t *testing.T) {
	fromPercent, err := Calculate(percentResidualLease(), nil)
	require.NoError(t, err)

	absolute := percentResidualLease()
	absolute.ResidualValue = fromPercent.ResidualAbsolute
	absolute.ResidualIsPercent = boolPtr(false)

	fromAbsolute, err := Calculate(absolute, nil)
	require.NoError(t, err)

	assert.Equal(t,
		roundTo2Decimals(fromPercent.MonthlyPayment),
		roundTo2Decimals(fromAbsolute.MonthlyPayment))
	assert.InDelta(t, fromPercent.ResidualPercent, fromAbsolute.ResidualPercent, 1e-9)
}

func TestCalculate_ResidualDefaultsToPercent(t *testing.T) {
	input := percentResidualLease()
	input.ResidualIsPercent = nil

	result, err := Calculate(input, nil)
	require.NoError(t, err)
	assert.InDelta(t, 13110.0, result.ResidualAbsolute, 1e-6)
}

func TestCalculate_Defaults(t *testing.T) {
	input := zeroDownLease()
	input.LeaseTermMonths = 0
	input.TaxMethod = ""

	result, err := Calculate(input, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultLeaseTermMonths, result.LeaseTermMonths)
	assert.Equal(t, domain.TaxOnMonthlyPayment, result.TaxMethod)
	assert.Equal(t, 299.76, roundTo2Decimals(result.MonthlyPayment))
}

func TestCalculate_TaxMethods(t *testing.T) {
	tests := []struct {
		method              domain.TaxMethod
		wantMonthlyPayment  float64
		wantDriveOffPayment float64
		wantTotalLeaseCost  float64
	}{
		{domain.TaxOnMonthlyPayment, 299.76, 1574.76, 12066.23},
		{domain.TaxOnSalesPrice, 282.12, 2794.62, 12668.95},
		{domain.TaxOnTotalLeasePayment, 282.12, 1574.76, 11449.08},
	}

	for _, tc := range tests {
		t.Run(string(tc.method), func(t *testing.T) {
			input := zeroDownLease()
			input.TaxMethod = tc.method

			result, err := Calculate(input, nil)
			require.NoError(t, err)

			summary := mustSummarize(t, result)
			assert.Equal(t, tc.method, summary.TaxMethod)
			assert.Equal(t, 282.12, summary.MonthlyPaymentPreTax)
			assert.Equal(t, tc.wantMonthlyPayment, summary.MonthlyPayment)
			assert.Equal(t, tc.wantDriveOffPayment, summary.DriveOffPayment)
			assert.Equal(t, tc.wantTotalLeaseCost, summary.TotalLeaseCost)
		})
	}
}

func TestCalculate_SalesPriceTaxDueAtSigning(t *testing.T) {
	input := zeroDownLease()
	input.TaxMethod = domain.TaxOnSalesPrice

	result, err := Calculate(input, nil)
	require.NoError(t, err)

	assert.InDelta(t, 21000*0.0625, result.DriveOffTax, 1e-9)
	assert.Equal(t, result.MonthlyPaymentPreTax, result.MonthlyPayment)
}

func TestCalculate_ManufacturerFees(t *testing.T) {
	fees := domain.DefaultFeeTable()

	tests := []struct {
		method              domain.TaxMethod
		wantMonthlyPayment  float64
		wantDriveOffPayment float64
		wantTotalLeaseCost  float64
	}{
		{domain.TaxOnMonthlyPayment, 319.80, 1594.80, 13137.93},
		{domain.TaxOnSalesPrice, 300.99, 2813.49, 13698.20},
		{domain.TaxOnTotalLeasePayment, 300.99, 1635.43, 12520.14},
	}

	for _, tc := range tests {
		t.Run(string(tc.method), func(t *testing.T) {
			input := zeroDownLease()
			input.Manufacturer = "Toyota"
			input.TaxMethod = tc.method

			result, err := Calculate(input, fees)
			require.NoError(t, err)

			summary := mustSummarize(t, result)
			assert.Equal(t, 650.0, summary.AcquisitionFee)
			assert.Equal(t, 350.0, summary.DispositionFee)
			assert.Equal(t, tc.wantMonthlyPayment, summary.MonthlyPayment)
			assert.Equal(t, tc.wantDriveOffPayment, summary.DriveOffPayment)
			assert.Equal(t, tc.wantTotalLeaseCost, summary.TotalLeaseCost)

			// The disposition fee is charged once, at lease end.
			recurring := result.MonthlyPayment * float64(result.LeaseTermMonths-1)
			assert.InDelta(t, recurring+result.DriveOffPayment+350, result.TotalLeaseCost, 1e-9)
		})
	}
}

func TestCalculate_UnknownManufacturerHasNoFees(t *testing.T) {
	for _, name := range []string{"", "Yugo", "toyota"} {
		input := zeroDownLease()
		input.Manufacturer = name

		result, err := Calculate(input, domain.DefaultFeeTable())
		require.NoError(t, err)
		assert.Zero(t, result.AcquisitionFee, name)
		assert.Zero(t, result.DispositionFee, name)
		assert.Equal(t, 299.76, roundTo2Decimals(result.MonthlyPayment), name)
	}
}

func TestCalculate_NegativeDepreciation(t *testing.T) {
	input := domain.LeaseInput{
		MSRP:          30000,
		SellingPrice:  10000,
		ResidualValue: 90,
		MoneyFactor:   0.00125,
	}

	result, err := Calculate(input, nil)
	require.NoError(t, err)

	summary := mustSummarize(t, result)
	assert.Less(t, result.MonthlyPayment, 0.0)
	assert.Equal(t, -425.97, summary.MonthlyPayment)
	assert.Equal(t, 27000.0, summary.ResidualValue)
	assert.Equal(t, 66.67, summary.DiscountOffMSRPPercent)
}

func TestCalculate_TradeInReducesCapCost(t *testing.T) {
	input := zeroDownLease()
	input.TradeInValue = 2000

	result, err := Calculate(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 238.07, roundTo2Decimals(result.MonthlyPayment))
}

func TestCalculate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.LeaseInput)
		wantField string
	}{
		{"missing msrp", func(in *domain.LeaseInput) { in.MSRP = 0 }, domain.FieldMSRP},
		{"missing selling price", func(in *domain.LeaseInput) { in.SellingPrice = 0 }, domain.FieldSellingPrice},
		{"missing residual", func(in *domain.LeaseInput) { in.ResidualValue = 0 }, domain.FieldResidualValue},
		{"missing money factor", func(in *domain.LeaseInput) { in.MoneyFactor = 0 }, domain.FieldMoneyFactor},
		{"nan money factor", func(in *domain.LeaseInput) { in.MoneyFactor = math.NaN() }, domain.FieldMoneyFactor},
		{"msrp reported first", func(in *domain.LeaseInput) {
			in.MSRP = 0
			in.MoneyFactor = 0
		}, domain.FieldMSRP},
		{"unknown tax method", func(in *domain.LeaseInput) { in.TaxMethod = "on_whim" }, domain.FieldTaxMethod},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := zeroDownLease()
			tc.mutate(&input)

			_, err := Calculate(input, nil)
			require.Error(t, err)

			var invalid *domain.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.wantField, invalid.Field)
			assert.EqualError(t, err, "invalid input: "+tc.wantField)
		})
	}
}

func TestCalculate_UncheckedFieldsPassThrough(t *testing.T) {
	input := zeroDownLease()
	input.SalesTaxPercent = -5
	input.TotalFees = -100
	input.LeaseTermMonths = -12

	result, err := Calculate(input, nil)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(result.MonthlyPayment))
}

func TestRoundTo2Decimals(t *testing.T) {
	assert.Equal(t, 1.01, roundTo2Decimals(1.005))
	assert.Equal(t, 3.0, roundTo2Decimals(0.00125*2400))
	assert.Equal(t, 57, roundToInt(56.5))
}

func TestRounding_NegativeHalvesRoundAwayFromZero(t *testing.T) {
	assert.Equal(t, -425.13, roundTo2Decimals(-425.125))
	assert.Equal(t, -2.35, roundTo2Decimals(-2.345))
	assert.Equal(t, -57, roundToInt(-56.5))

	summary := mustSummarize(t, domain.LeaseResult{
		MSRP:           23000,
		SellingPrice:   21000,
		MonthlyPayment: -425.125,
	})
	assert.Equal(t, -425.13, summary.MonthlyPayment)
}

func TestCalculate_OverflowIsRejected(t *testing.T) {
	_, err := Calculate(overflowLease(), nil)
	assert.ErrorIs(t, err, domain.ErrNonFiniteResult)
	assert.False(t, domain.IsInvalidInput(err))
}

func TestCalculate_OverflowingResidualPercentIsRejected(t *testing.T) {
	input := zeroDownLease()
	input.MSRP = math.SmallestNonzeroFloat64

	_, err := Calculate(input, nil)
	assert.ErrorIs(t, err, domain.ErrNonFiniteResult)
}

func TestSummarize_RejectsNonFiniteFigures(t *testing.T) {
	tests := map[string]domain.LeaseResult{
		"infinite payment":        {MSRP: 23000, MonthlyPayment: math.Inf(1)},
		"NaN residual percent":    {MSRP: 23000, ResidualPercent: math.NaN()},
		"negative infinite total": {MSRP: 23000, TotalLeaseCost: math.Inf(-1)},
	}
	for name, result := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Summarize(result)
			assert.ErrorIs(t, err, domain.ErrNonFiniteResult)
		})
	}
}
