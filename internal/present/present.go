// Package present orders, projects and formats a filtered record subset
// for display, and extracts single records for the detail view.
package present

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"yieldscan/pkg/contracts/domain"
)

// ErrFundNotFound is returned by Detail when no record carries the
// requested ticker. The ticker list offered to users is derived from the
// current result set, so hitting this indicates a caller bug.
var ErrFundNotFound = errors.New("fund not found")

// Column is one displayed table column.
type Column struct {
	Field string `json:"field"`
	Title string `json:"title"`
}

// displayColumns is the fixed projection and ordering of the results
// table. Fields missing from the source schema are dropped from the
// projection rather than rendered blank.
var displayColumns = []Column{
	{Field: "ticker", Title: "Ticker"},
	{Field: "strategy", Title: "Strategy"},
	{Field: "underlying", Title: "Underlying"},
	{Field: "current_price", Title: "Price"},
	{Field: "payout", Title: "Payout"},
	{Field: "latest_distribution", Title: "Latest Dist"},
	{Field: "dividend_yield", Title: "Yield %"},
	{Field: "declaration_date", Title: "Declaration Date"},
	{Field: "ex_div_date", Title: "Ex-Div Date"},
	{Field: "pay_date", Title: "Pay Date"},
}

// Table is the display-ready result set. Cells are formatted strings;
// the numeric values used for sorting and filtering are untouched.
type Table struct {
	Columns  []Column   `json:"columns"`
	Rows     [][]string `json:"rows"`
	Count    int        `json:"count"`
	Awaiting bool       `json:"awaiting_input,omitempty"`
}

// Presenter renders filtered subsets. When gated, it withholds the table
// until at least one criterion is active instead of dumping the whole
// list by default.
type Presenter struct {
	gated bool
}

// NewPresenter creates a presenter with the given gating policy.
func NewPresenter(gated bool) *Presenter {
	return &Presenter{gated: gated}
}

// Table sorts the subset descending by dividend yield (stable: ties keep
// source order), projects it onto the display columns present in fields,
// and formats the numeric cells. A nil fields list keeps every column.
func (p *Presenter) Table(records []domain.FundRecord, fields []string, criteriaActive bool) Table {
	columns := projectColumns(fields)

	if p.gated && !criteriaActive {
		return Table{Columns: columns, Rows: [][]string{}, Awaiting: true}
	}

	ordered := make([]domain.FundRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DividendYield > ordered[j].DividendYield
	})

	rows := make([][]string, 0, len(ordered))
	for _, r := range ordered {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, formatCell(r, col.Field))
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows, Count: len(rows)}
}

// Detail returns the first record matching ticker as the inspector view.
func Detail(records []domain.FundRecord, ticker string) (domain.FundDetail, error) {
	for _, r := range records {
		if strings.EqualFold(r.Ticker, ticker) {
			return domain.FundDetail{
				Ticker:        r.Ticker,
				CurrentPrice:  r.CurrentPrice,
				DividendYield: r.DividendYield,
				ExpenseRatio:  r.ExpenseRatio,
				Payout:        r.Payout,
				Strategy:      r.Strategy,
				Category:      r.Category,
				PayDate:       r.PayDate,
			}, nil
		}
	}
	return domain.FundDetail{}, fmt.Errorf("%w: %s", ErrFundNotFound, ticker)
}

func projectColumns(fields []string) []Column {
	if fields == nil {
		return displayColumns
	}
	present := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		present[f] = struct{}{}
	}
	columns := make([]Column, 0, len(displayColumns))
	for _, col := range displayColumns {
		if _, ok := present[col.Field]; ok {
			columns = append(columns, col)
		}
	}
	return columns
}

func formatCell(r domain.FundRecord, field string) string {
	switch field {
	case "ticker":
		return r.Ticker
	case "strategy":
		return r.Strategy
	case "underlying":
		return r.Underlying
	case "current_price":
		return fmt.Sprintf("$%.2f", r.CurrentPrice)
	case "payout":
		return r.Payout
	case "latest_distribution":
		return fmt.Sprintf("$%.4f", r.LatestDistribution)
	case "dividend_yield":
		return fmt.Sprintf("%.2f%%", r.DividendYield)
	case "declaration_date":
		return r.DeclarationDate
	case "ex_div_date":
		return r.ExDivDate
	case "pay_date":
		return r.PayDate
	}
	return ""
}
