// Package http exposes the fund browser over HTTP: search, facets,
// detail lookup and health.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "yieldscan/internal/errors"
	"yieldscan/internal/filter"
	"yieldscan/internal/present"
	"yieldscan/internal/services"
)

// FundHandler handles fund search and detail requests.
type FundHandler struct {
	service      *services.FundService
	validate     *validator.Validate
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewFundHandler creates a new fund handler.
func NewFundHandler(service *services.FundService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *FundHandler {
	return &FundHandler{
		service:      service,
		validate:     validator.New(),
		logger:       logger.With(slog.String("component", "fund_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the fund routes.
func (h *FundHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.Search)
	r.Get("/{ticker}", h.Detail)

	return r
}

// Search handles GET /api/funds. Filter criteria arrive as query
// parameters; all are optional and an empty query returns the full set
// (or the awaiting-input table when result gating is configured).
func (h *FundHandler) Search(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.criteriaFromQuery(r.URL.Query())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result := h.service.Search(r.Context(), criteria)

	h.logger.InfoContext(r.Context(), "search",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int("count", result.Table.Count),
		slog.Bool("data_available", result.DataAvailable),
	)

	render.JSON(w, r, map[string]interface{}{
		"status": searchStatus(result),
		"data":   result,
		"count":  result.Table.Count,
	})
}

// Detail handles GET /api/funds/{ticker}. The same filter parameters as
// Search scope the lookup to the subset the client is displaying.
func (h *FundHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	if ticker == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("ticker", "Ticker symbol is required"))
		return
	}

	criteria, err := h.criteriaFromQuery(r.URL.Query())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	detail, err := h.service.Detail(r.Context(), ticker, criteria)
	if err != nil {
		if errors.Is(err, present.ErrFundNotFound) {
			h.errorHandler.HandleError(w, r, apierrors.FundNotFoundError(ticker))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   detail,
	})
}

// Facets handles GET /api/facets, serving the filter dropdown universes.
func (h *FundHandler) Facets(w http.ResponseWriter, r *http.Request) {
	facets := h.service.Facets(r.Context())
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   facets,
	})
}

// criteriaFromQuery decodes and validates the filter query parameters:
// q, category (repeatable), payout (repeatable), issuer (repeatable),
// min_yield, max_yield.
func (h *FundHandler) criteriaFromQuery(query url.Values) (filter.Criteria, error) {
	criteria := filter.Criteria{
		Query:      query.Get("q"),
		Categories: query["category"],
		Payouts:    query["payout"],
		Issuers:    query["issuer"],
	}

	if raw := query.Get("min_yield"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter.Criteria{}, apierrors.ErrValidation("min_yield", "must be a number")
		}
		criteria.YieldMin = v
	}
	if raw := query.Get("max_yield"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter.Criteria{}, apierrors.ErrValidation("max_yield", "must be a number")
		}
		criteria.YieldMax = v
	}

	if err := h.validate.Struct(criteria); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return filter.Criteria{}, apierrors.ErrValidation(fieldErrs[0].Field(), "invalid value")
		}
		return filter.Criteria{}, apierrors.ErrInvalidRequest
	}

	return criteria, nil
}

func searchStatus(result services.SearchResult) string {
	switch {
	case !result.DataAvailable:
		return services.StatusDataUnavailable
	case result.Table.Awaiting:
		return "awaiting_input"
	default:
		return "success"
	}
}
