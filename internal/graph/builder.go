package graph

import (
	"fmt"

	"github.com/atharv3903/citygraph/internal/geo"
	"github.com/atharv3903/citygraph/internal/model"
)

// DefaultThreshold is the distance in miles below which two cities are
// connected directly.
const DefaultThreshold = 2000.0

// Builder grows a Graph one location at a time, connecting each new
// location to every known location closer than Threshold.
type Builder struct {
	Graph     *Graph
	Threshold float64
	// Distance defaults to geo.Distance.
	Distance func(a, b geo.Coord) float64
}

func NewBuilder(g *Graph, threshold float64) *Builder {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Builder{Graph: g, Threshold: threshold, Distance: geo.Distance}
}

// Add inserts key and returns the number of edges it created.
// Pairs are connected once, when the later of the two locations arrives.
func (b *Builder) Add(key string, lon, lat float64) (int, error) {
	if err := b.Graph.AddNode(key, lon, lat); err != nil {
		return 0, err
	}

	dist := b.Distance
	if dist == nil {
		dist = geo.Distance
	}
	here := geo.Coord{Lon: lon, Lat: lat}

	edges := 0
	for _, other := range b.Graph.coords() {
		if other.key == key {
			continue
		}
		// NaN distances from NaN coordinates fail this too.
		d := dist(here, other.coord)
		if !(d < b.Threshold) {
			continue
		}
		if err := b.Graph.AddEdge(key, other.key, d); err != nil {
			return edges, err
		}
		edges++
	}
	return edges, nil
}

// AddAll adds locs in order and returns the total number of edges created.
func (b *Builder) AddAll(locs []model.Location) (int, error) {
	total := 0
	for _, l := range locs {
		n, err := b.Add(l.Name, l.Lon, l.Lat)
		total += n
		if err != nil {
			return total, fmt.Errorf("add %q: %w", l.Name, err)
		}
	}
	return total, nil
}
