package normalize

import (
	"strings"

	"yieldscan/pkg/contracts/domain"
)

// tickerHeader is the header label of the key column. Rows whose ticker
// cell literally equals it are repeated header rows inside the data body
// and are dropped.
const tickerHeader = "Ticker"

// columnRule binds a record field to a header name with a positional
// fallback. The upstream sheet is externally controlled: columns get
// renamed or shifted, so when no header matches the name we fall back to
// the column's historical position before giving up and synthesizing
// defaults for the whole column.
type columnRule struct {
	field    string
	header   string
	fallback int
}

var columnRules = []columnRule{
	{field: "ticker", header: "ticker", fallback: 0},
	{field: "strategy", header: "strategy", fallback: 1},
	{field: "company", header: "company", fallback: 2},
	{field: "underlying", header: "underlying", fallback: 3},
	{field: "payout", header: "payout", fallback: 4},
	{field: "current_price", header: "current price", fallback: 5},
	{field: "dividend_yield", header: "dividend", fallback: 6},
	{field: "expense_ratio", header: "expense ratio", fallback: 7},
	{field: "latest_distribution", header: "latest distribution", fallback: 8},
	{field: "aum", header: "aum", fallback: 9},
	{field: "declaration_date", header: "declaration date", fallback: 10},
	{field: "ex_div_date", header: "ex-div date", fallback: 11},
	{field: "pay_date", header: "pay date", fallback: 12},
	{field: "category", header: "category", fallback: 15},
}

// resolveColumns maps each known field to a column index in the header
// row. Name match wins; otherwise the positional fallback is used when it
// fits inside the header width. Fields resolving to -1 have no source
// column and default for every row.
func resolveColumns(header []string) map[string]int {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(map[string]int, len(columnRules))
	for _, rule := range columnRules {
		if i, ok := byName[rule.header]; ok {
			cols[rule.field] = i
			continue
		}
		if rule.fallback < len(header) {
			cols[rule.field] = rule.fallback
			continue
		}
		cols[rule.field] = -1
	}
	return cols
}

// Records converts raw CSV rows (header first) into fund records. Rows
// without a ticker and repeated header rows are dropped; every other
// malformed cell degrades to its zero value. The second result lists the
// fields that were actually resolved to a source column, in rule order;
// the presenter omits table columns for fields outside this list.
func Records(rows [][]string) ([]domain.FundRecord, []string) {
	if len(rows) < 2 {
		return nil, nil
	}

	cols := resolveColumns(rows[0])

	fields := make([]string, 0, len(columnRules))
	for _, rule := range columnRules {
		if cols[rule.field] >= 0 {
			fields = append(fields, rule.field)
		}
	}

	cell := func(row []string, field string) string {
		idx := cols[field]
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	records := make([]domain.FundRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		ticker := Text(cell(row, "ticker"))
		if ticker == "" || ticker == tickerHeader {
			continue
		}

		records = append(records, domain.FundRecord{
			Ticker:             ticker,
			Strategy:           Text(cell(row, "strategy")),
			Company:            Text(cell(row, "company")),
			Underlying:         Text(cell(row, "underlying")),
			Category:           Text(cell(row, "category")),
			Payout:             Text(cell(row, "payout")),
			CurrentPrice:       Currency(cell(row, "current_price")),
			DividendYield:      Percent(cell(row, "dividend_yield")),
			ExpenseRatio:       Percent(cell(row, "expense_ratio")),
			LatestDistribution: Currency(cell(row, "latest_distribution")),
			AUM:                Magnitude(cell(row, "aum")),
			PayDate:            Text(cell(row, "pay_date")),
			DeclarationDate:    Text(cell(row, "declaration_date")),
			ExDivDate:          Text(cell(row, "ex_div_date")),
		})
	}

	return records, fields
}
