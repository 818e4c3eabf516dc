package domain

import "errors"

// Field labels reported by InvalidInputError.
const (
	FieldMSRP          = "MSRP"
	FieldSellingPrice  = "Selling Price"
	FieldResidualValue = "Residual Value"
	FieldMoneyFactor   = "Money Factor"
	FieldTaxMethod     = "Tax Method"
)

// InvalidInputError reports the first required field that is missing or zero.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Field
}

// NoCalculationPerformedError is returned by accessors read before any
// successful calculation.
type NoCalculationPerformedError struct{}

func (e *NoCalculationPerformedError) Error() string {
	return "no calculation performed"
}

var ErrNoCalculationPerformed error = &NoCalculationPerformedError{}

// ErrNonFiniteResult is returned when the inputs are so large or so small
// that a lease figure overflows to infinity or NaN.
var ErrNonFiniteResult = errors.New("lease figures out of range")

// IsInvalidInput reports whether err is, or wraps, an InvalidInputError.
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}
