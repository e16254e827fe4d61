package model

import (
	"fmt"
	"strings"
)

// Edge is one adjacency entry: the road from Src to Dst, Miles long.
type Edge struct {
	Src   string
	Dst   string
	Miles float64
}

// PathResult is the answer to one shortest-path query. An empty Path means
// Dst is unreachable from Src.
type PathResult struct {
	Path []string `json:"path"`
	// Total is the sum of edge weights along Path.
	Total float64 `json:"total"`
	// SettledSum adds up the settled distance of every node on Path.
	SettledSum float64 `json:"settled_sum"`
	Explored   int     `json:"explored_nodes"`
}

// Found reports whether a path exists.
func (r PathResult) Found() bool {
	return len(r.Path) > 0
}

type RouteResponse struct {
	PathResult
	CacheHit    bool   `json:"cache_hit"`
	Description string `json:"description"`
}

// Describe renders r for a human, e.g.
// "Path from A To C: A => B => C. Length = 8 miles."
func Describe(src, dst string, r PathResult) string {
	if !r.Found() {
		return "No such path"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Path from %s To %s: %s", src, dst, strings.Join(r.Path, " => "))
	fmt.Fprintf(&b, ". Length = %d miles.", int64(r.Total))
	return b.String()
}

// Location is one input record: a named point in degrees.
type Location struct {
	Name string  `json:"name"`
	Lon  float64 `json:"longitude"`
	Lat  float64 `json:"latitude"`
}
