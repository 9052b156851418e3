// Package services composes the snapshot cache, the filter engine and
// the presenter into the query surface consumed by the HTTP transport.
package services

import (
	"context"
	"log/slog"
	"time"

	"yieldscan/internal/filter"
	"yieldscan/internal/present"
	"yieldscan/internal/store"
	"yieldscan/pkg/contracts/domain"
)

// FundService answers search, facet and detail queries from the current
// snapshot, refreshing it when stale. Each query is one synchronous pass
// over the in-memory record set.
type FundService struct {
	cache     *store.Cache
	engine    *filter.Engine
	presenter *present.Presenter
	maxYield  float64
	logger    *slog.Logger
}

// NewFundService creates a fund service. maxYield > 0 caps the yield_max
// value accepted from clients; 0 leaves it unbounded.
func NewFundService(cache *store.Cache, engine *filter.Engine, presenter *present.Presenter, maxYield float64, logger *slog.Logger) *FundService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FundService{
		cache:     cache,
		engine:    engine,
		presenter: presenter,
		maxYield:  maxYield,
		logger:    logger.With(slog.String("component", "fund_service")),
	}
}

// SearchResult is one answered search: the display table plus the facet
// universes for the filter bar. DataAvailable is false when the last
// refresh failed and the snapshot is empty.
type SearchResult struct {
	Table         present.Table `json:"table"`
	Facets        domain.Facets `json:"facets"`
	DataAvailable bool          `json:"data_available"`
	FetchedAt     time.Time     `json:"fetched_at"`
}

// Search filters the current snapshot by criteria and presents the
// result. Zero matches with valid data is a normal outcome, distinct
// from data being unavailable.
func (s *FundService) Search(ctx context.Context, criteria filter.Criteria) SearchResult {
	snapshot := s.cache.Current(ctx)

	// Gating keys off what the client asked for, so record that before
	// the configured yield cap is folded in.
	active := criteria.Active()
	criteria = s.clampYield(criteria)

	matched := s.engine.Apply(snapshot.Records(), criteria)
	table := s.presenter.Table(matched, snapshot.Fields(), active)

	s.logger.DebugContext(ctx, "search answered",
		slog.Int("universe", len(snapshot.Records())),
		slog.Int("matched", len(matched)),
		slog.Bool("criteria_active", active))

	return SearchResult{
		Table:         table,
		Facets:        snapshot.Facets(),
		DataAvailable: !snapshot.Empty(),
		FetchedAt:     snapshot.FetchedAt(),
	}
}

// Detail returns the inspector view for one ticker, looked up within the
// subset the criteria select. The ticker list offered to users comes
// from that same subset, so a miss is a caller error.
func (s *FundService) Detail(ctx context.Context, ticker string, criteria filter.Criteria) (domain.FundDetail, error) {
	snapshot := s.cache.Current(ctx)
	criteria = s.clampYield(criteria)

	matched := s.engine.Apply(snapshot.Records(), criteria)
	return present.Detail(matched, ticker)
}

// Facets returns the dropdown universes of the current snapshot.
func (s *FundService) Facets(ctx context.Context) domain.Facets {
	return s.cache.Current(ctx).Facets()
}

// HealthStatus reports whether data is being served and how fresh it is.
type HealthStatus struct {
	Status    string    `json:"status"`
	Records   int       `json:"records"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Health statuses.
const (
	StatusOK              = "ok"
	StatusDataUnavailable = "data_unavailable"
)

// Health answers the health probe from the current snapshot.
func (s *FundService) Health(ctx context.Context) HealthStatus {
	snapshot := s.cache.Current(ctx)
	status := StatusOK
	if snapshot.Empty() {
		status = StatusDataUnavailable
	}
	return HealthStatus{
		Status:    status,
		Records:   len(snapshot.Records()),
		FetchedAt: snapshot.FetchedAt(),
	}
}

func (s *FundService) clampYield(criteria filter.Criteria) filter.Criteria {
	if s.maxYield > 0 && (criteria.YieldMax <= 0 || criteria.YieldMax > s.maxYield) {
		criteria.YieldMax = s.maxYield
	}
	return criteria
}
