package domain

// TaxMethod selects how sales tax is applied to a lease.
type TaxMethod string

const (
	TaxOnMonthlyPayment    TaxMethod = "on_monthly_payment"
	TaxOnSalesPrice        TaxMethod = "on_sales_price"
	TaxOnTotalLeasePayment TaxMethod = "on_total_lease_payment"
)

// TaxMethods lists every supported tax method in a stable order.
var TaxMethods = []TaxMethod{
	TaxOnMonthlyPayment,
	TaxOnSalesPrice,
	TaxOnTotalLeasePayment,
}

// LeaseInput is the negotiated deal. Zero values mean "not provided".
type LeaseInput struct {
	Manufacturer      string    `json:"manufacturer,omitempty"`
	MSRP              float64   `json:"msrp"`
	SellingPrice      float64   `json:"sellingPrice"`
	ResidualValue     float64   `json:"residualValue"`
	ResidualIsPercent *bool     `json:"residualIsPercent,omitempty"` // nil means percent
	MoneyFactor       float64   `json:"moneyFactor"`
	LeaseTermMonths   int       `json:"leaseTermMonths,omitempty"`
	SalesTaxPercent   float64   `json:"salesTaxPercent,omitempty"`
	TotalFees         float64   `json:"totalFees,omitempty"`
	Rebates           float64   `json:"rebates,omitempty"`
	TradeInValue      float64   `json:"tradeInValue,omitempty"`
	DownPayment       float64   `json:"downPayment,omitempty"`
	TaxMethod         TaxMethod `json:"taxMethod,omitempty"`
}

// LeaseResult holds the unrounded figures of one calculation.
// Rounding is applied only when the figures are read for presentation.
type LeaseResult struct {
	MSRP            float64
	SellingPrice    float64
	LeaseTermMonths int
	TaxMethod       TaxMethod

	ResidualAbsolute     float64
	ResidualPercent      float64
	AnnualPercentageRate float64
	MonthlyPaymentPreTax float64
	MonthlyPayment       float64
	DriveOffTax          float64
	DriveOffPayment      float64
	AcquisitionFee       float64
	DispositionFee       float64
	TotalLeaseCost       float64
}

// LeaseSummary is the rounded, presentation form of a LeaseResult.
type LeaseSummary struct {
	TaxMethod                   TaxMethod `json:"taxMethod"`
	LeaseTermMonths             int       `json:"leaseTermMonths"`
	ResidualPercent             int       `json:"residualPercent"`
	ResidualValue               float64   `json:"residualValue"`
	APR                         float64   `json:"apr"`
	MonthlyPaymentPreTax        float64   `json:"monthlyPaymentPreTax"`
	MonthlyPayment              float64   `json:"monthlyPayment"`
	DiscountOffMSRPPercent      float64   `json:"discountOffMsrpPercent"`
	MonthlyPaymentToMSRPPercent float64   `json:"monthlyPaymentToMsrpPercent"`
	DriveOffPayment             float64   `json:"driveOffPayment"`
	AcquisitionFee              float64   `json:"acquisitionFee"`
	DispositionFee              float64   `json:"dispositionFee"`
	TotalLeaseCost              float64   `json:"totalLeaseCost"`
}

// TaxMethodComparison is the same deal summarized once per tax method.
type TaxMethodComparison struct {
	Summaries []LeaseSummary `json:"summaries"`
}
