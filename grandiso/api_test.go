package grandiso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplbrain/grandiso-go/core"
	"github.com/aplbrain/grandiso-go/grandiso"
)

func buildCycleMotif(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], nil))
	}
	return g
}

func buildCompleteHost(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, g.AddEdge(ids[i], ids[j], nil))
		}
	}
	return g
}

func buildDirectedTriangle(t *testing.T, a, b, c string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(a, b, nil))
	require.NoError(t, g.AddEdge(b, c, nil))
	require.NoError(t, g.AddEdge(c, a, nil))
	return g
}

func TestFindMotifs_FourCycleInK4(t *testing.T) {
	motif := buildCycleMotif(t)
	host := buildCompleteHost(t, "0", "1", "2", "3")

	results, err := grandiso.FindMotifs(motif, host)
	require.NoError(t, err)
	assert.Len(t, results, 24)

	for _, m := range results {
		assert.Len(t, m, 4)
		seen := make(map[string]bool, 4)
		for _, x := range m {
			seen[x] = true
		}
		assert.Len(t, seen, 4, "mapping must be injective")
	}

	iso, err := grandiso.FindMotifs(motif, host, grandiso.WithIsomorphismsOnly())
	require.NoError(t, err)
	assert.Empty(t, iso, "every 4-vertex induced subgraph of K4 is K4, not a 4-cycle")
}

func TestFindMotifs_DirectedTriangleRotations(t *testing.T) {
	motif := buildDirectedTriangle(t, "a", "b", "c")
	host := buildDirectedTriangle(t, "A", "B", "C")

	results, err := grandiso.FindMotifs(motif, host, grandiso.WithDirected(true))
	require.NoError(t, err)

	want := []map[string]string{
		{"a": "A", "b": "B", "c": "C"},
		{"a": "B", "b": "C", "c": "A"},
		{"a": "C", "b": "A", "c": "B"},
	}
	assert.ElementsMatch(t, want, results)
}

func TestFindMotifs_HintConstrainsSearch(t *testing.T) {
	motif := buildDirectedTriangle(t, "a", "b", "c")
	host := buildDirectedTriangle(t, "A", "B", "C")

	results, err := grandiso.FindMotifs(motif, host, grandiso.WithHints(map[string]string{"a": "A"}))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"a": "A", "b": "B", "c": "C"}}, results)
}

func TestFindMotifs_Limit(t *testing.T) {
	motif := buildCycleMotif(t)
	host := buildCompleteHost(t, "0", "1", "2", "3")

	results, err := grandiso.FindMotifs(motif, host, grandiso.WithLimit(5))
	require.NoError(t, err)
	assert.Len(t, results, 5)

	unlimited, err := grandiso.FindMotifs(motif, host)
	require.NoError(t, err)
	assert.Equal(t, unlimited[:5], results, "limited results must be a prefix of the unlimited run")
}

func TestCountMotifs_MatchesListLength(t *testing.T) {
	host := core.NewGraph()
	for _, e := range [][2]string{
		{"v0", "v1"}, {"v1", "v2"}, {"v2", "v3"}, {"v3", "v4"}, {"v4", "v0"},
		{"v0", "v5"}, {"v5", "v6"}, {"v6", "v7"}, {"v7", "v8"}, {"v8", "v9"}, {"v9", "v0"},
	} {
		require.NoError(t, host.AddEdge(e[0], e[1], nil))
	}

	motif := core.NewGraph()
	require.NoError(t, motif.AddEdge("p", "q", nil))
	require.NoError(t, motif.AddEdge("q", "r", nil))
	require.NoError(t, motif.AddEdge("r", "s", nil))

	list, err := grandiso.FindMotifs(motif, host)
	require.NoError(t, err)
	count, err := grandiso.CountMotifs(motif, host)
	require.NoError(t, err)
	assert.Equal(t, len(list), count)
}

func TestFindMotifs_AttributeFiltering(t *testing.T) {
	motif := core.NewGraph()
	require.NoError(t, motif.AddVertex("m1", core.Attrs{"color": core.String("red")}))
	require.NoError(t, motif.AddVertex("m2", nil))
	require.NoError(t, motif.AddEdge("m1", "m2", nil))

	colors := map[string]string{
		"h1": "red", "h2": "red",
		"h3": "blue", "h4": "blue", "h5": "blue", "h6": "blue", "h7": "blue",
	}
	ids := make([]string, 0, len(colors))
	for id := range colors {
		ids = append(ids, id)
	}
	host := buildCompleteHost(t, ids...)
	for id, c := range colors {
		require.NoError(t, host.AddVertex(id, core.Attrs{"color": core.String(c)}))
	}

	results, err := grandiso.FindMotifs(motif, host)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, m := range results {
		assert.Contains(t, []string{"h1", "h2"}, m["m1"])
	}
}

func TestFindMotifs_EmptyMotif(t *testing.T) {
	motif := core.NewGraph()
	host := core.NewGraph()
	require.NoError(t, host.AddVertex("A", nil))

	_, err := grandiso.FindMotifs(motif, host)
	assert.ErrorIs(t, err, grandiso.ErrEmptyMotif)
}

func TestFindMotifs_DirectednessMismatch(t *testing.T) {
	motif := core.NewGraph(core.WithDirected(true))
	require.NoError(t, motif.AddEdge("a", "b", nil))
	host := core.NewGraph()
	require.NoError(t, host.AddEdge("A", "B", nil))

	_, err := grandiso.FindMotifs(motif, host)
	assert.ErrorIs(t, err, grandiso.ErrDirectednessMismatch)
}

func TestFindMotifs_InvalidHintRejected(t *testing.T) {
	motif := buildDirectedTriangle(t, "a", "b", "c")
	host := buildDirectedTriangle(t, "A", "B", "C")

	_, err := grandiso.FindMotifs(motif, host, grandiso.WithHints(map[string]string{"a": "A", "b": "A"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, grandiso.ErrInvalidHint)
}

func TestFindMotifs_HintRejectedWhenEdgeMissing(t *testing.T) {
	motif := core.NewGraph(core.WithDirected(true))
	require.NoError(t, motif.AddEdge("a", "b", nil))

	host := core.NewGraph(core.WithDirected(true))
	require.NoError(t, host.AddEdge("A", "C", nil))
	require.NoError(t, host.AddEdge("D", "B", nil))

	_, err := grandiso.FindMotifs(motif, host, grandiso.WithHints(map[string]string{"a": "A", "b": "B"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, grandiso.ErrInvalidHint)
}

func TestFindMotifs_DirectedOverrideMatchesUndirectedProjection(t *testing.T) {
	motif := core.NewGraph(core.WithDirected(true))
	require.NoError(t, motif.AddEdge("a", "b", nil))
	require.NoError(t, motif.AddEdge("b", "c", nil))
	require.NoError(t, motif.AddEdge("a", "c", nil))

	host := core.NewGraph(core.WithDirected(true))
	require.NoError(t, host.AddEdge("A", "B", nil))
	require.NoError(t, host.AddEdge("B", "C", nil))
	require.NoError(t, host.AddEdge("A", "C", nil))

	results, err := grandiso.FindMotifs(motif, host, grandiso.WithDirected(false))
	require.NoError(t, err)
	assert.Len(t, results, 6)
}

func TestFindMotifs_PredicateErrorPropagates(t *testing.T) {
	motif := core.NewGraph()
	require.NoError(t, motif.AddVertex("m1", nil))
	host := core.NewGraph()
	require.NoError(t, host.AddVertex("h1", nil))

	boom := func(core.Attrs, core.Attrs) bool { panic("boom") }
	_, err := grandiso.FindMotifs(motif, host, grandiso.WithNodeAttrMatch(boom))

	require.Error(t, err)
	var predErr *grandiso.PredicateError
	require.ErrorAs(t, err, &predErr)
	assert.Equal(t, "m1", predErr.MotifVertex)
}

func TestFindMotifsInstrumented_RecordsSamples(t *testing.T) {
	motif := buildCycleMotif(t)
	host := buildCompleteHost(t, "0", "1", "2", "3")

	results, stats, err := grandiso.FindMotifsInstrumented(motif, host)
	require.NoError(t, err)
	assert.Len(t, results, 24)
	assert.NotEmpty(t, stats.Samples)
	assert.Positive(t, stats.MaxLen)
}

func TestUniformNodeInterestingness(t *testing.T) {
	motif := buildCycleMotif(t)
	v := grandiso.UniformNodeInterestingness(motif)
	for _, id := range motif.Vertices() {
		assert.Equal(t, 1.0, v.Value(id))
	}
}

func TestFindMotifsIter_StreamsAndStopsEarly(t *testing.T) {
	motif := buildCycleMotif(t)
	host := buildCompleteHost(t, "0", "1", "2", "3")

	count := 0
	for m, err := range grandiso.FindMotifsIter(motif, host) {
		require.NoError(t, err)
		assert.Len(t, m, 4)
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestFindMotifsIter_MatchesListResultSet(t *testing.T) {
	motif := buildCycleMotif(t)
	host := buildCompleteHost(t, "0", "1", "2", "3")

	list, err := grandiso.FindMotifs(motif, host)
	require.NoError(t, err)

	var streamed []map[string]string
	for m, err := range grandiso.FindMotifsIter(motif, host) {
		require.NoError(t, err)
		streamed = append(streamed, m)
	}
	assert.ElementsMatch(t, list, streamed)
}
