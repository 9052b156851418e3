// Package filter selects the subset of fund records matching a set of
// independently-optional criteria. Criteria compose with AND; an unset
// criterion matches everything.
package filter

import (
	"strings"

	"yieldscan/pkg/contracts/domain"
)

// TagMode controls how multiple selected category tags combine.
type TagMode string

const (
	// TagMatchAny keeps a record containing at least one selected tag.
	TagMatchAny TagMode = "any"
	// TagMatchAll keeps a record only when it contains every selected tag.
	TagMatchAll TagMode = "all"
)

// Criteria is one filter request. Zero values are no-ops. YieldMax <= 0
// means no upper bound.
type Criteria struct {
	Query      string   `json:"query" validate:"max=100"`
	Categories []string `json:"categories" validate:"max=25,dive,max=50"`
	Payouts    []string `json:"payouts" validate:"max=25,dive,max=50"`
	Issuers    []string `json:"issuers" validate:"max=25,dive,max=100"`
	YieldMin   float64  `json:"yield_min" validate:"min=0"`
	YieldMax   float64  `json:"yield_max"`
}

// Active reports whether any criterion is set. Used by the presenter's
// gating policy.
func (c Criteria) Active() bool {
	return c.Query != "" ||
		len(c.Categories) > 0 ||
		len(c.Payouts) > 0 ||
		len(c.Issuers) > 0 ||
		c.YieldMin > 0 ||
		c.YieldMax > 0
}

// Engine applies criteria to record sets under a fixed tag-match policy.
type Engine struct {
	tagMode TagMode
}

// NewEngine creates a filter engine. An unknown mode falls back to
// match-any, the behavior of the live sheet browser.
func NewEngine(mode TagMode) *Engine {
	if mode != TagMatchAll {
		mode = TagMatchAny
	}
	return &Engine{tagMode: mode}
}

// Apply returns the records matching every set criterion, preserving the
// input order. The result shares the underlying records; nothing is
// copied or mutated.
func (e *Engine) Apply(records []domain.FundRecord, c Criteria) []domain.FundRecord {
	if !c.Active() {
		return records
	}

	query := strings.ToLower(strings.TrimSpace(c.Query))
	payouts := membershipSet(c.Payouts)
	issuers := membershipSet(c.Issuers)

	matched := make([]domain.FundRecord, 0, len(records))
	for _, r := range records {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		if len(c.Categories) > 0 && !e.matchesTags(r.Category, c.Categories) {
			continue
		}
		if len(payouts) > 0 {
			if _, ok := payouts[r.Payout]; !ok {
				continue
			}
		}
		if len(issuers) > 0 {
			if _, ok := issuers[r.Company]; !ok {
				continue
			}
		}
		if r.DividendYield < c.YieldMin {
			continue
		}
		if c.YieldMax > 0 && r.DividendYield > c.YieldMax {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// matchesQuery is a case-insensitive substring search across the
// searchable text fields, OR across fields.
func matchesQuery(r domain.FundRecord, query string) bool {
	return strings.Contains(strings.ToLower(r.Ticker), query) ||
		strings.Contains(strings.ToLower(r.Strategy), query) ||
		strings.Contains(strings.ToLower(r.Company), query) ||
		strings.Contains(strings.ToLower(r.Category), query) ||
		strings.Contains(strings.ToLower(r.Underlying), query)
}

// matchesTags checks the selected tags against the record's raw category
// text as case-insensitive substrings, combined per the engine's mode.
func (e *Engine) matchesTags(category string, tags []string) bool {
	cat := strings.ToLower(category)
	for _, tag := range tags {
		contains := strings.Contains(cat, strings.ToLower(strings.TrimSpace(tag)))
		if e.tagMode == TagMatchAll {
			if !contains {
				return false
			}
		} else if contains {
			return true
		}
	}
	return e.tagMode == TagMatchAll
}

func membershipSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
