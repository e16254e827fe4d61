package algo

import "github.com/atharv3903/citygraph/internal/model"

// GraphCtx is the read-only view of a graph the search needs.
// *graph.Graph satisfies it.
type GraphCtx interface {
	Contains(key string) bool
	Len() int
	Neighbors(key string) ([]model.Edge, error)
}
