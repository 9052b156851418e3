// Package fetch retrieves the published fund sheet as CSV over HTTP.
package fetch

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Fetcher downloads the published CSV snapshot of the fund sheet.
type Fetcher struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewFetcher creates a fetcher for the given CSV URL. A fetch either
// completes within the timeout or fails outright; there is no partial
// result.
func NewFetcher(url string, timeout time.Duration, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With(slog.String("component", "fetcher")),
	}
}

// Fetch downloads and parses the CSV, returning raw rows (header first).
// Rows may have varying lengths; the normalizer is responsible for
// defaulting missing cells.
func (f *Fetcher) Fetch(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fund sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fund sheet fetch returned status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // upstream rows are ragged
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse fund sheet CSV: %w", err)
	}

	f.logger.InfoContext(ctx, "fetched fund sheet",
		slog.Int("rows", len(rows)),
		slog.Duration("elapsed", time.Since(start)))

	return rows, nil
}
