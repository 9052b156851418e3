package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldscan/pkg/contracts/domain"
)

var funds = []domain.FundRecord{
	{Ticker: "NVDY", Strategy: "Covered call on NVDA", Company: "YieldMax", Underlying: "NVDA", Category: "Single Stock, Options Income", Payout: "Monthly", DividendYield: 84.5},
	{Ticker: "YBTC", Strategy: "Bitcoin covered call", Company: "Roundhill", Underlying: "Bitcoin", Category: "Bitcoin, Options Income", Payout: "Weekly", DividendYield: 45.2},
	{Ticker: "XDTE", Strategy: "0DTE on S&P 500", Company: "Roundhill", Underlying: "SPX", Category: "0DTE, Index", Payout: "Weekly", DividendYield: 27.9},
	{Ticker: "JEPI", Strategy: "Equity premium income", Company: "JPMorgan", Underlying: "S&P 500", Category: "Index", Payout: "Monthly", DividendYield: 7.5},
}

func TestApplyEmptyCriteriaIsNoOp(t *testing.T) {
	e := NewEngine(TagMatchAny)
	got := e.Apply(funds, Criteria{})
	assert.Equal(t, funds, got)
}

func TestApplyQuerySearchesAllTextFields(t *testing.T) {
	e := NewEngine(TagMatchAny)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "ticker", query: "nvdy", want: []string{"NVDY"}},
		{name: "strategy", query: "premium", want: []string{"JEPI"}},
		{name: "company", query: "roundhill", want: []string{"YBTC", "XDTE"}},
		{name: "category", query: "bitcoin", want: []string{"YBTC"}},
		{name: "underlying", query: "spx", want: []string{"XDTE"}},
		{name: "no match", query: "uranium", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Apply(funds, Criteria{Query: tt.query})
			assert.Equal(t, tt.want, tickers(got))
		})
	}
}

func TestApplyCategoryMatchAny(t *testing.T) {
	e := NewEngine(TagMatchAny)
	got := e.Apply(funds, Criteria{Categories: []string{"Bitcoin", "0DTE"}})
	assert.Equal(t, []string{"YBTC", "XDTE"}, tickers(got))
}

func TestApplyCategoryMatchAll(t *testing.T) {
	e := NewEngine(TagMatchAll)

	got := e.Apply(funds, Criteria{Categories: []string{"Bitcoin", "Options Income"}})
	assert.Equal(t, []string{"YBTC"}, tickers(got))

	// A record carrying only one of the selected tags is excluded.
	got = e.Apply(funds, Criteria{Categories: []string{"Bitcoin", "0DTE"}})
	assert.Empty(t, tickers(got))
}

func TestApplyPayoutExactMembership(t *testing.T) {
	e := NewEngine(TagMatchAny)
	got := e.Apply(funds, Criteria{Payouts: []string{"Weekly"}})
	assert.Equal(t, []string{"YBTC", "XDTE"}, tickers(got))

	// Substrings of a real payout value must not match.
	got = e.Apply(funds, Criteria{Payouts: []string{"Week"}})
	assert.Empty(t, got)
}

func TestApplyIssuerExactMembership(t *testing.T) {
	e := NewEngine(TagMatchAny)
	got := e.Apply(funds, Criteria{Issuers: []string{"JPMorgan", "YieldMax"}})
	assert.Equal(t, []string{"NVDY", "JEPI"}, tickers(got))
}

func TestApplyYieldBounds(t *testing.T) {
	e := NewEngine(TagMatchAny)

	got := e.Apply(funds, Criteria{YieldMin: 90})
	assert.Empty(t, got)

	got = e.Apply(funds, Criteria{YieldMin: 27.9})
	assert.Equal(t, []string{"NVDY", "YBTC", "XDTE"}, tickers(got))

	got = e.Apply(funds, Criteria{YieldMin: 20, YieldMax: 50})
	assert.Equal(t, []string{"YBTC", "XDTE"}, tickers(got))

	// YieldMax <= 0 means unbounded.
	got = e.Apply(funds, Criteria{YieldMax: 0})
	assert.Equal(t, funds, got)
}

func TestApplyCriteriaComposeWithAND(t *testing.T) {
	e := NewEngine(TagMatchAny)
	got := e.Apply(funds, Criteria{
		Query:      "covered",
		Categories: []string{"Options Income"},
		Payouts:    []string{"Monthly"},
	})
	assert.Equal(t, []string{"NVDY"}, tickers(got))
}

func TestApplyOrderIndependent(t *testing.T) {
	e := NewEngine(TagMatchAny)

	both := e.Apply(funds, Criteria{Query: "covered", Categories: []string{"Options Income"}})
	queryFirst := e.Apply(e.Apply(funds, Criteria{Query: "covered"}), Criteria{Categories: []string{"Options Income"}})
	categoryFirst := e.Apply(e.Apply(funds, Criteria{Categories: []string{"Options Income"}}), Criteria{Query: "covered"})

	assert.Equal(t, both, queryFirst)
	assert.Equal(t, both, categoryFirst)
}

func TestCriteriaActive(t *testing.T) {
	assert.False(t, Criteria{}.Active())
	assert.True(t, Criteria{Query: "x"}.Active())
	assert.True(t, Criteria{YieldMin: 5}.Active())
	assert.True(t, Criteria{Payouts: []string{"Weekly"}}.Active())
}

func TestNewEngineUnknownModeFallsBackToAny(t *testing.T) {
	e := NewEngine(TagMode("fuzzy"))
	got := e.Apply(funds, Criteria{Categories: []string{"Bitcoin", "0DTE"}})
	require.Len(t, got, 2)
}

func tickers(records []domain.FundRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Ticker)
	}
	return out
}
