package problem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wayfind/problem"
	"wayfind/routing"
)

// sampleDoc is a minimal well-formed problem file: three cities on a
// chain with heuristic attributes for each.
const sampleDoc = `
problem:
  cities: [Aachen, Bonn, Celle]
  city_start: Aachen
  city_end: Celle
  city_Aachen:
    connects_to:
      Bonn: 1.5
  city_Bonn:
    connects_to:
      Celle: 2.5
additional_information:
  city_Aachen:
    line_of_sight_distance: 3.5
    altitude_difference: 0.5
  city_Bonn:
    line_of_sight_distance: 2.0
    altitude_difference: 0.25
  city_Celle:
    line_of_sight_distance: 0.0
    altitude_difference: 0.0
`

func TestRead_WellFormed(t *testing.T) {
	g, err := problem.Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	// Node keys are de-prefixed canonical names.
	require.Equal(t, []string{"Aachen", "Bonn", "Celle"}, g.Keys())
	require.Equal(t, "Aachen", g.Start())
	require.Equal(t, "Celle", g.Goal())

	out, err := g.Neighbors("Aachen")
	require.NoError(t, err)
	require.Equal(t, []routing.Edge{{To: "Bonn", Cost: 1.5}}, out)

	// Heuristic attributes align with the same de-prefixed namespace.
	info, ok := g.Info("Bonn")
	require.True(t, ok)
	require.Equal(t, routing.HeuristicInfo{LineOfSight: 2.0, AltitudeDiff: 0.25}, info)
}

func TestRead_SolvesEndToEnd(t *testing.T) {
	g, err := problem.Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	res, err := routing.Search(g, routing.ModeAdvanced)
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost)
	require.Equal(t, []string{"Aachen", "Bonn", "Celle"}, res.Path)
}

func TestRead_NoAdditionalInformation(t *testing.T) {
	doc := `
problem:
  cities: [A, B]
  city_start: A
  city_end: B
  city_A:
    connects_to:
      B: 1.0
`
	g, err := problem.Read(strings.NewReader(doc))
	require.NoError(t, err)

	// Without attributes only ModeNone is solvable.
	_, ok := g.Info("A")
	require.False(t, ok)

	res, err := routing.Search(g, routing.ModeNone)
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Cost)

	_, err = routing.Search(g, routing.ModeSimple)
	require.ErrorIs(t, err, routing.ErrMissingHeuristic)
}

func TestRead_Malformed(t *testing.T) {
	cases := map[string]string{
		"not yaml":           "problem: [unclosed",
		"no problem section": "additional_information: {}",
		"no cities":          "problem: {city_start: A, city_end: B}",
		"no start":           "problem: {cities: [A, B], city_end: B}",
		"no goal":            "problem: {cities: [A, B], city_start: A}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := problem.Read(strings.NewReader(doc))
			require.ErrorIs(t, err, problem.ErrMalformed)
		})
	}
}

func TestRead_SemanticErrorsSurfaceFromRouting(t *testing.T) {
	// Start key not in the cities list: a routing validation error, not a
	// parse error.
	doc := `
problem:
  cities: [A, B]
  city_start: X
  city_end: B
`
	_, err := problem.Read(strings.NewReader(doc))
	require.ErrorIs(t, err, routing.ErrStartNotFound)
}
