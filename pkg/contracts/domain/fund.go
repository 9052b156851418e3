package domain

// FundRecord represents one normalized row of the income-ETF master list.
// All numeric fields are already cleaned: currency and percent markers are
// stripped and unparseable source values are zero.
type FundRecord struct {
	Ticker             string  `json:"ticker" validate:"required,min=1,max=10"`
	Strategy           string  `json:"strategy"`
	Company            string  `json:"company"`
	Underlying         string  `json:"underlying"`
	Category           string  `json:"category"`
	Payout             string  `json:"payout"`
	CurrentPrice       float64 `json:"current_price" validate:"min=0"`
	DividendYield      float64 `json:"dividend_yield" validate:"min=0"`
	ExpenseRatio       float64 `json:"expense_ratio" validate:"min=0"`
	LatestDistribution float64 `json:"latest_distribution" validate:"min=0"`
	AUM                float64 `json:"aum" validate:"min=0"`
	PayDate            string  `json:"pay_date"`
	DeclarationDate    string  `json:"declaration_date"`
	ExDivDate          string  `json:"ex_div_date"`
}

// FundDetail is the single-record inspector view offered next to the
// results table. Dates stay opaque display strings; nothing downstream
// sorts or computes on them.
type FundDetail struct {
	Ticker        string  `json:"ticker"`
	CurrentPrice  float64 `json:"current_price"`
	DividendYield float64 `json:"dividend_yield"`
	ExpenseRatio  float64 `json:"expense_ratio"`
	Payout        string  `json:"payout"`
	Strategy      string  `json:"strategy"`
	Category      string  `json:"category"`
	PayDate       string  `json:"pay_date"`
}

// Facets are the distinct values used to populate the filter dropdowns.
type Facets struct {
	Categories []string `json:"categories"`
	Payouts    []string `json:"payouts"`
	Issuers    []string `json:"issuers"`
}
