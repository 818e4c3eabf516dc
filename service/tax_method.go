package service

import "lease-calculator/domain"

// leaseFigures are the amounts a tax treatment may draw its base from.
type leaseFigures struct {
	sellingPrice         float64
	downPayment          float64
	totalFees            float64
	acquisitionFee       float64
	monthlyPaymentPreTax float64
}

type taxTreatment interface {
	// taxableDriveOffBase is the amount taxed at signing.
	taxableDriveOffBase(f leaseFigures) float64
	appliesTaxToMonthlyPayment() bool
}

type taxOnMonthlyPayment struct{}

func (taxOnMonthlyPayment) taxableDriveOffBase(f leaseFigures) float64 {
	return f.downPayment + f.totalFees
}

func (taxOnMonthlyPayment) appliesTaxToMonthlyPayment() bool { return true }

type taxOnSalesPrice struct{}

func (taxOnSalesPrice) taxableDriveOffBase(f leaseFigures) float64 {
	return f.sellingPrice
}

func (taxOnSalesPrice) appliesTaxToMonthlyPayment() bool { return false }

type taxOnTotalLeasePayment struct{}

func (taxOnTotalLeasePayment) taxableDriveOffBase(f leaseFigures) float64 {
	return f.monthlyPaymentPreTax + f.downPayment + f.totalFees + f.acquisitionFee
}

func (taxOnTotalLeasePayment) appliesTaxToMonthlyPayment() bool { return false }

var taxTreatments = map[domain.TaxMethod]taxTreatment{
	domain.TaxOnMonthlyPayment:    taxOnMonthlyPayment{},
	domain.TaxOnSalesPrice:        taxOnSalesPrice{},
	domain.TaxOnTotalLeasePayment: taxOnTotalLeasePayment{},
}

// resolveTaxMethod maps an empty method to the default and rejects unknown ones.
func resolveTaxMethod(method domain.TaxMethod) (domain.TaxMethod, taxTreatment, error) {
	if method == "" {
		method = domain.TaxOnMonthlyPayment
	}
	treatment, ok := taxTreatments[method]
	if !ok {
		return "", nil, &domain.InvalidInputError{Field: domain.FieldTaxMethod}
	}
	return method, treatment, nil
}
