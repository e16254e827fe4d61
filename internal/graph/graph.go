package graph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/atharv3903/citygraph/internal/geo"
	"github.com/atharv3903/citygraph/internal/model"
)

var (
	ErrNotFound = errors.New("location not found")
	ErrFrozen   = errors.New("graph is read-only")
)

// Location is a named node with its coordinates and adjacency list.
type Location struct {
	Key   string
	Coord geo.Coord
	Adj   []model.Edge
}

// Graph is an undirected, weighted graph keyed by location name.
// It is safe for concurrent readers; writers must finish before Freeze.
type Graph struct {
	mu     sync.RWMutex
	nodes  map[string]*Location
	frozen bool
}

func New() *Graph {
	return &Graph{nodes: make(map[string]*Location)}
}

// AddNode inserts key, replacing any existing node of that name together
// with its edges. Neighbors of the replaced node lose their entries for it,
// so adjacency stays symmetric.
func (g *Graph) AddNode(key string, lon, lat float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if old, ok := g.nodes[key]; ok {
		g.detach(old)
	}
	g.nodes[key] = &Location{Key: key, Coord: geo.Coord{Lon: lon, Lat: lat}}
	return nil
}

// detach drops every entry pointing at n from n's neighbors.
// Callers hold g.mu.
func (g *Graph) detach(n *Location) {
	for _, e := range n.Adj {
		nb, ok := g.nodes[e.Dst]
		if !ok || nb == n {
			continue
		}
		kept := nb.Adj[:0]
		for _, back := range nb.Adj {
			if back.Dst != n.Key {
				kept = append(kept, back)
			}
		}
		nb.Adj = kept
	}
}

// AddEdge appends a and b to each other's adjacency with weight w.
// Parallel entries are kept if the pair is added twice.
func (g *Graph) AddEdge(a, b string, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	na, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("add edge %s-%s: %w: %q", a, b, ErrNotFound, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return fmt.Errorf("add edge %s-%s: %w: %q", a, b, ErrNotFound, b)
	}

	na.Adj = append(na.Adj, model.Edge{Src: a, Dst: b, Miles: w})
	nb.Adj = append(nb.Adj, model.Edge{Src: b, Dst: a, Miles: w})
	return nil
}

func (g *Graph) Contains(key string) bool {
	g.mu.RLock()
	_, ok := g.nodes[key]
	g.mu.RUnlock()
	return ok
}

// Keys returns every location name in sorted order.
func (g *Graph) Keys() []string {
	g.mu.RLock()
	keys := make([]string, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	g.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Node returns a copy of the location stored under key.
func (g *Graph) Node(key string) (Location, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return Location{}, false
	}
	cp := *n
	cp.Adj = append([]model.Edge(nil), n.Adj...)
	return cp, true
}

type keyCoord struct {
	key   string
	coord geo.Coord
}

// coords snapshots every node's coordinates, in no particular order.
func (g *Graph) coords() []keyCoord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]keyCoord, 0, len(g.nodes))
	for k, n := range g.nodes {
		out = append(out, keyCoord{key: k, coord: n.Coord})
	}
	return out
}

// Neighbors returns the adjacency list of key. The slice must not be modified.
func (g *Graph) Neighbors(key string) ([]model.Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", key, ErrNotFound)
	}
	return n.Adj, nil
}

// Freeze makes the graph read-only. Construction is over once it returns.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.frozen
}
