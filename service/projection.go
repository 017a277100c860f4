package service

import "compound-interest/domain"

// YearlySummary projects inv one year at a time. Each year's interest is
// earned on the previous year's closing balance, before the year's
// contributions are added.
func YearlySummary(inv domain.Investment) []domain.YearlySnapshot {
	ratePerPeriod := inv.Rate / 100
	annualContribution := inv.AnnualContribution()

	amount := inv.Principal
	totalInterest := 0.0
	summary := make([]domain.YearlySnapshot, 0, initialCapacity(inv.Years))

	for year := 1; year <= inv.Years; year++ {
		annualInterest := amount * ratePerPeriod
		totalInterest += annualInterest
		amount += annualContribution + annualInterest

		summary = append(summary, domain.YearlySnapshot{
			Year:               year,
			Principal:          inv.Principal,
			AnnualContribution: annualContribution,
			TotalContribution:  annualContribution * float64(year),
			AnnualInterest:     annualInterest,
			TotalInterest:      totalInterest,
			TotalAmount:        amount,
		})
	}

	return summary
}

// initialCapacity bounds the preallocation; longer projections grow the
// slice as they go.
func initialCapacity(years int) int {
	return min(years, maxPreallocatedYears)
}
