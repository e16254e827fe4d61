package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv3903/citygraph/internal/cache"
	"github.com/atharv3903/citygraph/internal/graph"
	"github.com/atharv3903/citygraph/internal/model"
	"github.com/atharv3903/citygraph/internal/session"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	g := graph.New()
	for i, k := range []string{"X", "Y", "Z", "Island"} {
		require.NoError(t, g.AddNode(k, 0, float64(i)))
	}
	require.NoError(t, g.AddEdge("X", "Y", 5))
	require.NoError(t, g.AddEdge("Y", "Z", 3))
	require.NoError(t, g.AddEdge("X", "Z", 20))
	return New(session.New(g, nil))
}

func do(t *testing.T, s *Server, method, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(method, url, nil))
	return rec
}

func decodeRoute(t *testing.T, rec *httptest.ResponseRecorder) model.RouteResponse {
	t.Helper()
	var rr model.RouteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rr))
	return rr
}

func TestHealthz(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouteMissThenHit(t *testing.T) {
	s := newServer(t)

	rec := do(t, s, http.MethodGet, "/route?src=X&dst=Z")
	require.Equal(t, http.StatusOK, rec.Code)
	rr := decodeRoute(t, rec)
	assert.Equal(t, []string{"X", "Y", "Z"}, rr.Path)
	assert.Equal(t, 8.0, rr.Total)
	assert.False(t, rr.CacheHit)
	assert.Equal(t, "Path from X To Z: X => Y => Z. Length = 8 miles.", rr.Description)

	rr = decodeRoute(t, do(t, s, http.MethodGet, "/route?src=X&dst=Z"))
	assert.True(t, rr.CacheHit)
	assert.Equal(t, []string{"X", "Y", "Z"}, rr.Path)

	var st cache.Stats
	rec = do(t, s, http.MethodGet, "/debug/cache_stats")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&st))
	assert.Equal(t, 1, st.Hits)
	assert.Equal(t, 1, st.Entries)
}

func TestRouteNoPath(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/route?src=X&dst=Island")
	require.Equal(t, http.StatusOK, rec.Code)
	rr := decodeRoute(t, rec)
	assert.Empty(t, rr.Path)
	assert.Equal(t, "No such path", rr.Description)
}

func TestRouteErrors(t *testing.T) {
	s := newServer(t)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/route?src=X").Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/route?src=X&dst=Atlantis").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, s, http.MethodPost, "/route?src=X&dst=Z").Code)
}

func TestClearCache(t *testing.T) {
	s := newServer(t)
	do(t, s, http.MethodGet, "/route?src=X&dst=Z")

	rec := do(t, s, http.MethodPost, "/debug/clear_cache")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, s.Sess.Cache().Len())

	rr := decodeRoute(t, do(t, s, http.MethodGet, "/route?src=X&dst=Z"))
	assert.False(t, rr.CacheHit)
}

func TestLocations(t *testing.T) {
	s := newServer(t)

	var names []string
	rec := do(t, s, http.MethodGet, "/locations")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&names))
	assert.Equal(t, []string{"Island", "X", "Y", "Z"}, names)

	var loc struct {
		Name      string   `json:"name"`
		Neighbors []string `json:"neighbors"`
	}
	rec = do(t, s, http.MethodGet, "/locations/Y")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&loc))
	assert.Equal(t, "Y", loc.Name)
	assert.Equal(t, []string{"X", "Z"}, loc.Neighbors)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/locations/Atlantis").Code)
}

func TestMetrics(t *testing.T) {
	s := newServer(t)
	do(t, s, http.MethodGet, "/route?src=X&dst=Z")
	do(t, s, http.MethodGet, "/route?src=X&dst=Z")
	do(t, s, http.MethodGet, "/route?src=X&dst=Atlantis")

	body := do(t, s, http.MethodGet, "/metrics").Body.String()
	assert.True(t, strings.Contains(body, `citygraph_route_queries_total{result="hit"} 1`))
	assert.True(t, strings.Contains(body, `citygraph_route_queries_total{result="miss"} 1`))
	assert.True(t, strings.Contains(body, `citygraph_route_queries_total{result="not_found"} 1`))
}
