package algo

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/atharv3903/citygraph/internal/graph"
	"github.com/atharv3903/citygraph/internal/model"
)

type pqItem struct {
	node string
	dist float64
}

type pq []pqItem

func (p pq) Len() int           { return len(p) }
func (p pq) Less(i, j int) bool { return p[i].dist < p[j].dist }
func (p pq) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func (p *pq) Push(x any) {
	*p = append(*p, x.(pqItem))
}

func (p *pq) Pop() any {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra from src over the whole reachable component and
// returns the least-weight path to dst. Weights must be non-negative.
// An unreachable dst yields an empty path and a nil error.
func ShortestPath(g GraphCtx, src, dst string) (model.PathResult, error) {
	if !g.Contains(src) {
		return model.PathResult{}, fmt.Errorf("source %q: %w", src, graph.ErrNotFound)
	}
	if !g.Contains(dst) {
		return model.PathResult{}, fmt.Errorf("destination %q: %w", dst, graph.ErrNotFound)
	}

	// Nodes missing from dist are at +Inf.
	dist := map[string]float64{src: 0}
	prev := map[string]string{}
	settled := map[string]bool{}
	pq := &pq{}
	heap.Push(pq, pqItem{node: src, dist: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		u := cur.node
		if settled[u] {
			continue
		}
		settled[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return model.PathResult{}, err
		}

		for _, e := range neighbors {
			if settled[e.Dst] {
				continue
			}
			nd := dist[u] + e.Miles
			if nd < tentative(dist, e.Dst) {
				dist[e.Dst] = nd
				prev[e.Dst] = u
				heap.Push(pq, pqItem{node: e.Dst, dist: nd})
			}
		}
	}

	path := backtrack(prev, src, dst, g.Len())
	res := model.PathResult{Path: path, Explored: len(settled)}
	if len(path) == 0 {
		return res, nil
	}

	// dist[dst] equals the edge-weight sum along path.
	res.Total = dist[dst]
	for _, n := range path {
		res.SettledSum += dist[n]
	}
	return res, nil
}

func tentative(dist map[string]float64, n string) float64 {
	if d, ok := dist[n]; ok {
		return d
	}
	return math.Inf(1)
}

// backtrack follows predecessor links from dst to src. It gives up with an
// empty path if the chain breaks or runs longer than limit nodes.
func backtrack(prev map[string]string, src, dst string, limit int) []string {
	path := []string{}
	cur := dst

	for cur != src {
		path = append(path, cur)
		if len(path) > limit {
			return []string{}
		}
		p, ok := prev[cur]
		if !ok {
			return []string{}
		}
		cur = p
	}
	path = append(path, src)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
