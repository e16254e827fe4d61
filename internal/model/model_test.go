package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		res  PathResult
		want string
	}{
		{"no path", PathResult{Path: []string{}}, "No such path"},
		{"nil path", PathResult{}, "No such path"},
		{"single", PathResult{Path: []string{"A"}}, "Path from A To A: A. Length = 0 miles."},
		{
			"truncates miles",
			PathResult{Path: []string{"A", "B", "C"}, Total: 1234.99},
			"Path from A To C: A => B => C. Length = 1234 miles.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := "A", "A"
			if len(tt.res.Path) > 0 {
				dst = tt.res.Path[len(tt.res.Path)-1]
			}
			assert.Equal(t, tt.want, Describe(src, dst, tt.res))
		})
	}
}
