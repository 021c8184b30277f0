package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

func lookupServiceFor(server *httptest.Server) *FlightLookupService {
	return &FlightLookupService{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Client:  server.Client(),
	}
}

func TestNormalizeFlightNumber(t *testing.T) {
	cases := []struct {
		in   string
		out  string
		fail bool
	}{
		{in: "ke723", out: "KE723"},
		{in: "  KE723 ", out: "KE723"},
		{in: "oz1085", out: "OZ1085"},
		{in: "KE", fail: true},
		{in: "KE 723", fail: true},
		{in: "KE723456789", fail: true},
		{in: "", fail: true},
	}
	for _, tc := range cases {
		got, err := NormalizeFlightNumber(tc.in)
		if tc.fail {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.out, got)
	}
}

func TestLookup_NoCredential(t *testing.T) {
	service := &FlightLookupService{APIKey: "", BaseURL: "http://unused", Client: http.DefaultClient}

	_, err := service.Lookup("KE723", "")
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotImplemented, appErr.Code)
}

func TestLookup_InvalidInputsCheckedBeforeCredential(t *testing.T) {
	service := &FlightLookupService{APIKey: "", BaseURL: "http://unused", Client: http.DefaultClient}

	_, err := service.Lookup("K", "")
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	_, err = service.Lookup("KE723", "2026-13-01")
	appErr, ok = err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestLookup_PrefersExactFlightNumberMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/flights", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "KE723", r.URL.Query().Get("flight_iata"))
		assert.Equal(t, "2026-04-10", r.URL.Query().Get("flight_date"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"flight_status":"scheduled",
			 "departure":{"airport":"Incheon International","iata":"ICN","scheduled":"2026-04-10T09:00:00+09:00"},
			 "arrival":{"airport":"Kansai International","iata":"KIX","scheduled":"2026-04-10T11:00:00+09:00"},
			 "airline":{"name":"Jin Air"},
			 "flight":{"iata":"LJ5723"}},
			{"flight_status":"scheduled",
			 "departure":{"airport":"Incheon International","iata":"ICN","scheduled":"2026-04-10T09:00:00+09:00"},
			 "arrival":{"airport":"Kansai International","iata":"KIX","scheduled":"2026-04-10T11:00:00+09:00"},
			 "airline":{"name":"Korean Air"},
			 "flight":{"iata":"KE723"}}
		]}`))
	}))
	defer server.Close()

	result, err := lookupServiceFor(server).Lookup("ke723", "2026-04-10")
	require.NoError(t, err)
	assert.Equal(t, "KE723", result.FlightNo)
	assert.Equal(t, "Korean Air", result.Airline)
	assert.Equal(t, "ICN", result.DepAirport)
	assert.Equal(t, "KIX", result.ArrAirport)
	require.NotNil(t, result.DepTime)
	assert.Equal(t, "2026-04-10T00:00:00.000Z", *result.DepTime)
	require.NotNil(t, result.ArrTime)
	assert.Equal(t, "2026-04-10T02:00:00.000Z", *result.ArrTime)
	require.NotNil(t, result.DepAirportName)
	assert.Equal(t, "Incheon International", *result.DepAirportName)
	require.NotNil(t, result.Status)
	assert.Equal(t, "scheduled", *result.Status)
}

func TestLookup_FallsBackToFirstRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"airline":{"name":"Jin Air"},
			 "departure":{"iata":"ICN"},
			 "arrival":{"iata":"KIX"},
			 "flight":{"iata":"LJ5723"}}
		]}`))
	}))
	defer server.Close()

	result, err := lookupServiceFor(server).Lookup("KE723", "")
	require.NoError(t, err)
	assert.Equal(t, "LJ5723", result.FlightNo)
	assert.Equal(t, "Jin Air", result.Airline)
	assert.Nil(t, result.DepTime)
}

func TestLookup_NoRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	_, err := lookupServiceFor(server).Lookup("KE723", "")
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestLookup_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := lookupServiceFor(server).Lookup("KE723", "")
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)

	// Unreachable host is mapped the same way.
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closed.Close()
	_, err = (&FlightLookupService{APIKey: "test-key", BaseURL: closed.URL, Client: http.DefaultClient}).Lookup("KE723", "")
	appErr, ok = err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

func TestLookup_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":`))
	}))
	defer server.Close()

	_, err := lookupServiceFor(server).Lookup("KE723", "")
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}
