package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchParsesCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Ticker,Company\nNVDY,YieldMax\nMSTY,YieldMax\n"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second, nil)
	rows, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Ticker", "Company"}, rows[0])
	assert.Equal(t, "NVDY", rows[1][0])
}

func TestFetchRaggedRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ticker,Company,Payout\nNVDY\nMSTY,YieldMax\n"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second, nil)
	rows, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 1)
	assert.Len(t, rows[2], 2)
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second, nil)
	rows, err := f.Fetch(context.Background())
	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := NewFetcher(srv.URL, time.Second, nil)
	_, err := f.Fetch(context.Background())
	assert.Error(t, err)
}
