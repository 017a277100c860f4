package domain

// YearlySnapshot is the state of an investment at the end of one year.
type YearlySnapshot struct {
	Year               int     `json:"year"`
	Principal          float64 `json:"principal"`
	AnnualContribution float64 `json:"annual_contribution"`
	TotalContribution  float64 `json:"total_contribution"`
	AnnualInterest     float64 `json:"annual_interest"`
	TotalInterest      float64 `json:"total_interest"`
	TotalAmount        float64 `json:"total_amount"`
}
