package service

import (
	"testing"

	"lease-calculator/domain"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// zeroDownLease is a $23,000 car sold for $21,000 with a 57% residual
// given as an absolute amount.
func zeroDownLease() domain.LeaseInput {
	return domain.LeaseInput{
		MSRP:              23000,
		SellingPrice:      21000,
		ResidualValue:     13110,
		ResidualIsPercent: boolPtr(false),
		MoneyFactor:       0.00125,
		LeaseTermMonths:   36,
		SalesTaxPercent:   6.25,
		TotalFees:         1200,
		Rebates:           500,
	}
}

func withDownLease() domain.LeaseInput {
	input := zeroDownLease()
	input.DownPayment = 1700
	return input
}

func percentResidualLease() domain.LeaseInput {
	input := zeroDownLease()
	input.ResidualValue = 57
	input.ResidualIsPercent = boolPtr(true)
	return input
}

// overflowLease is large enough that the capitalized cost overflows float64.
func overflowLease() domain.LeaseInput {
	return domain.LeaseInput{
		MSRP:          1e308,
		SellingPrice:  1e308,
		TotalFees:     1e308,
		ResidualValue: 50,
		MoneyFactor:   0.001,
	}
}

func mustSummarize(t *testing.T, result domain.LeaseResult) domain.LeaseSummary {
	t.Helper()
	summary, err := Summarize(result)
	require.NoError(t, err)
	return summary
}
