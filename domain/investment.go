package domain

import (
	"fmt"
	"math"
)

// Investment holds the validated inputs of a projection.
// Build it with NewInvestment; the zero value is a valid empty projection.
type Investment struct {
	Principal    float64
	Contribution float64 // monthly
	Rate         float64 // annual, in percent
	Years        int
}

// NewInvestment validates the four inputs and returns an Investment.
func NewInvestment(principal, contribution, rate float64, years int) (Investment, error) {
	if invalidAmount(principal) || invalidAmount(contribution) || invalidAmount(rate) || years < 0 {
		return Investment{}, fmt.Errorf(
			"%w: negative or non-finite values are not allowed (principal=%v, contribution=%v, rate=%v, years=%d)",
			ErrInvalidInput, principal, contribution, rate, years,
		)
	}

	return Investment{
		Principal:    principal,
		Contribution: contribution,
		Rate:         rate,
		Years:        years,
	}, nil
}

// AnnualContribution is the monthly contribution applied once per year.
func (i Investment) AnnualContribution() float64 {
	return i.Contribution * 12
}

func invalidAmount(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

// InvestmentParams carries raw, defaulted inputs from an adapter.
// Fields absent from a JSON body keep whatever default the struct held
// before decoding.
type InvestmentParams struct {
	Principal    float64 `json:"principal"`
	Contribution float64 `json:"contribution"`
	Rate         float64 `json:"rate"`
	Years        int     `json:"years"`
}

const (
	DefaultPrincipal    = 0.0
	DefaultContribution = 1.0
	DefaultRate         = 5.0
	DefaultRequestYears = 5
	DefaultCLIYears     = 0
)

// DefaultRequestParams returns the defaults applied to HTTP request bodies.
func DefaultRequestParams() InvestmentParams {
	return InvestmentParams{
		Principal:    DefaultPrincipal,
		Contribution: DefaultContribution,
		Rate:         DefaultRate,
		Years:        DefaultRequestYears,
	}
}

// DefaultCLIParams returns the defaults applied to command line flags.
func DefaultCLIParams() InvestmentParams {
	p := DefaultRequestParams()
	p.Years = DefaultCLIYears
	return p
}

// Investment validates the params.
func (p InvestmentParams) Investment() (Investment, error) {
	return NewInvestment(p.Principal, p.Contribution, p.Rate, p.Years)
}
