// Package store holds the normalized fund records in memory. A snapshot
// is immutable once built; a refresh replaces it wholesale.
package store

import (
	"sort"
	"strings"
	"time"

	"yieldscan/pkg/contracts/domain"
)

// placeholder tokens excluded from the category tag universe.
const emptyTag = "-"

// Snapshot is one immutable generation of the record store, with the
// derived facet sets used to populate the filter dropdowns.
type Snapshot struct {
	records    []domain.FundRecord
	fields     []string
	categories []string
	payouts    []string
	issuers    []string
	fetchedAt  time.Time
}

// NewSnapshot builds a snapshot and derives its facets. The records and
// fields slices are owned by the snapshot after the call. fields lists
// the record fields that were resolved from the source schema; columns
// for unresolved fields are omitted from presentation.
func NewSnapshot(records []domain.FundRecord, fields []string, fetchedAt time.Time) *Snapshot {
	s := &Snapshot{
		records:   records,
		fields:    fields,
		fetchedAt: fetchedAt,
	}

	tags := make(map[string]struct{})
	payouts := make(map[string]struct{})
	issuers := make(map[string]struct{})

	for _, r := range records {
		for _, tag := range strings.Split(r.Category, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || tag == emptyTag {
				continue
			}
			tags[tag] = struct{}{}
		}
		if r.Payout != "" {
			payouts[r.Payout] = struct{}{}
		}
		if r.Company != "" {
			issuers[r.Company] = struct{}{}
		}
	}

	s.categories = sortedKeys(tags)
	s.payouts = sortedKeys(payouts)
	s.issuers = sortedKeys(issuers)
	return s
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns the full record set. Callers must not mutate it.
func (s *Snapshot) Records() []domain.FundRecord { return s.records }

// Fields returns the record fields resolved from the source schema, in
// schema rule order.
func (s *Snapshot) Fields() []string { return s.fields }

// Categories returns the distinct individual category tags, sorted.
func (s *Snapshot) Categories() []string { return s.categories }

// Payouts returns the distinct payout frequencies, sorted.
func (s *Snapshot) Payouts() []string { return s.payouts }

// Issuers returns the distinct issuer names, sorted.
func (s *Snapshot) Issuers() []string { return s.issuers }

// Facets bundles the three dropdown universes.
func (s *Snapshot) Facets() domain.Facets {
	return domain.Facets{
		Categories: s.categories,
		Payouts:    s.payouts,
		Issuers:    s.issuers,
	}
}

// FetchedAt reports when the underlying data was fetched.
func (s *Snapshot) FetchedAt() time.Time { return s.fetchedAt }

// Empty reports whether the snapshot holds no records, the
// "data unavailable" state after a failed fetch.
func (s *Snapshot) Empty() bool { return len(s.records) == 0 }
