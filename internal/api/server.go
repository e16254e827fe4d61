package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atharv3903/citygraph/internal/graph"
	"github.com/atharv3903/citygraph/internal/model"
	"github.com/atharv3903/citygraph/internal/session"
)

type Server struct {
	Router *mux.Router
	Sess   *session.Session

	reg *prometheus.Registry
	m   *metrics
}

func New(sess *session.Session) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		Router: mux.NewRouter(),
		Sess:   sess,
		reg:    reg,
		m:      newMetrics(reg),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.Router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	s.Router.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)
	s.Router.HandleFunc("/locations", s.handleLocations).Methods(http.MethodGet)
	s.Router.HandleFunc("/locations/{name}", s.handleLocation).Methods(http.MethodGet)

	s.Router.HandleFunc("/debug/clear_cache", func(w http.ResponseWriter, _ *http.Request) {
		s.Sess.Cache().Clear()
		w.Write([]byte("cleared"))
	}).Methods(http.MethodPost)

	s.Router.HandleFunc("/debug/cache_stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.Sess.Cache().Stats())
	}).Methods(http.MethodGet)

	s.Router.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	src, dst := q.Get("src"), q.Get("dst")
	if src == "" || dst == "" {
		writeError(w, http.StatusBadRequest, "src and dst are required")
		return
	}

	start := time.Now()
	res, hit, err := s.Sess.Route(src, dst)
	s.m.duration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, graph.ErrNotFound):
		s.m.queries.WithLabelValues("not_found").Inc()
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.m.queries.WithLabelValues("error").Inc()
		log.Printf("route %s -> %s: %v", src, dst, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch {
	case hit:
		s.m.queries.WithLabelValues("hit").Inc()
	case !res.Found():
		s.m.queries.WithLabelValues("no_path").Inc()
		s.m.explored.Observe(float64(res.Explored))
	default:
		s.m.queries.WithLabelValues("miss").Inc()
		s.m.explored.Observe(float64(res.Explored))
	}

	writeJSON(w, http.StatusOK, model.RouteResponse{
		PathResult:  res,
		CacheHit:    hit,
		Description: model.Describe(src, dst, res),
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Sess.Graph().Keys())
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	n, ok := s.Sess.Graph().Node(name)
	if !ok {
		writeError(w, http.StatusNotFound, name+" is not part of data-base")
		return
	}

	neighbors := make([]string, 0, len(n.Adj))
	for _, e := range n.Adj {
		neighbors = append(neighbors, e.Dst)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":      n.Key,
		"longitude": n.Coord.Lon,
		"latitude":  n.Coord.Lat,
		"neighbors": neighbors,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
