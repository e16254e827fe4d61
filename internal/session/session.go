// Package session ties one graph to its query cache. Each Session is
// independent, so several graphs can be served from the same process.
package session

import (
	"fmt"

	"github.com/atharv3903/citygraph/internal/algo"
	"github.com/atharv3903/citygraph/internal/cache"
	"github.com/atharv3903/citygraph/internal/graph"
	"github.com/atharv3903/citygraph/internal/model"
)

type Session struct {
	g  *graph.Graph
	rc *cache.RouteCache
}

// New freezes g; the cache is only valid while the graph cannot change.
// A nil cache gets an unbounded one.
func New(g *graph.Graph, rc *cache.RouteCache) *Session {
	if rc == nil {
		rc = cache.NewRouteCache()
	}
	g.Freeze()
	return &Session{g: g, rc: rc}
}

func (s *Session) Graph() *graph.Graph      { return s.g }
func (s *Session) Cache() *cache.RouteCache { return s.rc }

func (s *Session) Contains(key string) bool {
	return s.g.Contains(key)
}

// Route answers src -> dst from the cache, computing and storing the result
// on a miss. Unreachable pairs are cached as empty paths too.
func (s *Session) Route(src, dst string) (model.PathResult, bool, error) {
	if !s.g.Contains(src) {
		return model.PathResult{}, false, fmt.Errorf("start %q: %w", src, graph.ErrNotFound)
	}
	if !s.g.Contains(dst) {
		return model.PathResult{}, false, fmt.Errorf("end %q: %w", dst, graph.ErrNotFound)
	}

	key := cache.RouteKey{Src: src, Dst: dst}
	if r, ok := s.rc.Get(key); ok {
		return r, true, nil
	}

	r, err := algo.ShortestPath(s.g, src, dst)
	if err != nil {
		return model.PathResult{}, false, err
	}
	s.rc.Put(key, r)
	return r, false, nil
}

// Build grows a graph from locs, connecting pairs closer than threshold
// miles, and wraps it in a Session whose cache holds at most cacheCap
// routes (0 for unbounded). It also returns the number of edges created.
func Build(locs []model.Location, threshold float64, cacheCap int) (*Session, int, error) {
	b := graph.NewBuilder(graph.New(), threshold)
	edges, err := b.AddAll(locs)
	if err != nil {
		return nil, edges, err
	}
	return New(b.Graph, cache.NewRouteCacheWithCap(cacheCap)), edges, nil
}
