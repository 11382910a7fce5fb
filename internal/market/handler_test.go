package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubTrendSource struct {
	trends map[string]any
	err    error
}

func (s stubTrendSource) CurrentTrends(context.Context, string) (map[string]any, error) {
	return s.trends, s.err
}

func testRouter(h Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/locations", h.Locations)
	router.Get("/insights/{location}", h.Insights)
	router.Get("/compare/{first}/{second}", h.Compare)
	return router
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	return body.Data
}

func TestLocationsListsAll(t *testing.T) {
	t.Parallel()

	router := testRouter(Handler{Table: DefaultTable()})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Equal(t, 8.0, data["total"])

	locations := data["locations"].([]any)
	first := locations[0].(map[string]any)
	require.Equal(t, "Australia", first["code"])
	require.Contains(t, first["description"], "market")
}

func TestInsightsKnownLocation(t *testing.T) {
	t.Parallel()

	handler := Handler{
		Table:  DefaultTable(),
		Trends: stubTrendSource{trends: map[string]any{"trending_styles": []any{"vintage"}}},
	}
	rec := httptest.NewRecorder()
	testRouter(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insights/Japan", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Equal(t, "Japan", data["location"])
	require.Equal(t, "JPY", data["currency"])
	require.NotNil(t, data["current_trends"])
}

func TestInsightsOmitsTrendsOnUpstreamFailure(t *testing.T) {
	t.Parallel()

	handler := Handler{
		Table:  DefaultTable(),
		Trends: stubTrendSource{err: errors.New("quota exhausted")},
	}
	rec := httptest.NewRecorder()
	testRouter(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insights/UK", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Equal(t, "UK", data["location"])
	require.NotContains(t, data, "current_trends")
}

func TestInsightsUnknownLocation(t *testing.T) {
	t.Parallel()

	router := testRouter(Handler{Table: DefaultTable()})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insights/Atlantis", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompareLocations(t *testing.T) {
	t.Parallel()

	router := testRouter(Handler{Table: DefaultTable()})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/compare/USA/Japan", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)

	require.Contains(t, data, "USA")
	require.Contains(t, data, "Japan")
	diff := data["price_difference"].(map[string]any)
	require.Equal(t, 5.0, diff["min"])
	require.Equal(t, 10.0, diff["max"])
}

func TestCompareUnknownLocation(t *testing.T) {
	t.Parallel()

	router := testRouter(Handler{Table: DefaultTable()})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/compare/USA/Atlantis", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
