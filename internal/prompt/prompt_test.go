package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv3903/citygraph/internal/graph"
	"github.com/atharv3903/citygraph/internal/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	g := graph.New()
	for _, k := range []string{"X", "Y", "Z", "Island"} {
		require.NoError(t, g.AddNode(k, 0, 0))
	}
	require.NoError(t, g.AddEdge("X", "Y", 5.5))
	require.NoError(t, g.AddEdge("Y", "Z", 3))
	require.NoError(t, g.AddEdge("X", "Z", 20))
	return session.New(g, nil)
}

func TestRunSession(t *testing.T) {
	sess := newSession(t)
	in := strings.NewReader(strings.Join([]string{
		"X", "Z",
		"Atlantis",
		"X", "Island",
		"X", "Z",
		"Q",
	}, "\n") + "\n")
	var out bytes.Buffer

	require.NoError(t, Run(sess, in, &out))

	want := []string{
		`Enter start city ("Q" to quit):`,
		`Enter end city ("Q" to quit):`,
		`Path from X To Z: X => Y => Z. Length = 8 miles.`,
		`Enter start city ("Q" to quit):`,
		`Atlantis is not part of data-base. Please try again.`,
		`Enter start city ("Q" to quit):`,
		`Enter end city ("Q" to quit):`,
		`No such path`,
		`Enter start city ("Q" to quit):`,
		`Enter end city ("Q" to quit):`,
		`Path from X To Z: X => Y => Z. Length = 8 miles.`,
		`Enter start city ("Q" to quit):`,
		`Terminated.  Goodbye.`,
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())

	st := sess.Cache().Stats()
	assert.Equal(t, 1, st.Hits, "repeated pair comes from the cache")
	assert.Equal(t, 2, st.Entries)
}

func TestRunQuitOnEnd(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(newSession(t), strings.NewReader("X\nQ\n"), &out))
	assert.True(t, strings.HasSuffix(out.String(), "Terminated.  Goodbye.\n"))
}

func TestRunEOF(t *testing.T) {
	sess := newSession(t)
	var out bytes.Buffer
	require.NoError(t, Run(sess, strings.NewReader("X\n"), &out))
	assert.True(t, strings.HasSuffix(out.String(), `Enter end city ("Q" to quit):`+"\n"))
	assert.Zero(t, sess.Cache().Len())
}
