package currencyapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/fxconvert/pkg/exchange"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSource(endpoints ...string) *Source {
	return NewWithEndpoints(endpoints, 2*time.Second, testLogger())
}

func TestFetchBaseRates_Primary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usd.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"date":"2024-01-01","usd":{"pkr":278.1,"eur":0.9}}`))
	}))
	defer srv.Close()

	table, err := newSource(srv.URL).FetchBaseRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", table.AsOf)
	assert.Equal(t, "usd", table.Base)
	assert.InEpsilon(t, 278.1, table.Rates["pkr"], 1e-9)
	assert.Len(t, table.Rates, 2)
}

func TestFetchBaseRates_FallbackOnPrimaryFailure(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer primary.Close()

	var fallbackHits int
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackHits++
		_, _ = w.Write([]byte(`{"date":"2024-01-01","usd":{"pkr":278.1}}`))
	}))
	defer fallback.Close()

	table, err := newSource(primary.URL, fallback.URL).FetchBaseRates(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, 1, fallbackHits)
	assert.InEpsilon(t, 278.1, table.Rates["pkr"], 1e-9)
}

func TestFetchBaseRates_MissingDateIsAFailedAttempt(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"usd":{"pkr":278.1}}`))
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2024-01-01","usd":{"pkr":278.1}}`))
	}))
	defer fallback.Close()

	table, err := newSource(primary.URL, fallback.URL).FetchBaseRates(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", table.AsOf)
}

func TestFetchBaseRates_MissingBaseFieldIsAFailedAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2024-01-01","eur":{"pkr":300.0}}`))
	}))
	defer srv.Close()

	_, err := newSource(srv.URL).FetchBaseRates(context.Background(), "usd")
	assert.ErrorIs(t, err, exchange.ErrSourceUnavailable)
}

func TestFetchBaseRates_MalformedBodyIsAFailedAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newSource(srv.URL).FetchBaseRates(context.Background(), "usd")
	assert.ErrorIs(t, err, exchange.ErrSourceUnavailable)
}

func TestFetchBaseRates_AllEndpointsDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	srv.Close() // closed on purpose: connection refused

	_, err := newSource(srv.URL, srv.URL).FetchBaseRates(context.Background(), "usd")
	assert.ErrorIs(t, err, exchange.ErrSourceUnavailable)
}

func TestFetchBaseRates_LowercasesBaseCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eur.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"date":"2024-01-01","eur":{"usd":1.1}}`))
	}))
	defer srv.Close()

	table, err := newSource(srv.URL).FetchBaseRates(context.Background(), "  EUR ")
	require.NoError(t, err)
	assert.Equal(t, "eur", table.Base)
}
