package problem_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wayfind/problem"
	"wayfind/routing"
)

func TestNewSolution_ReprefixesHeuristicKeys(t *testing.T) {
	res := &routing.Result{
		Cost:          4,
		Path:          []string{"Aachen", "Bonn", "Celle"},
		ExpandedNodes: 2,
		Heuristic:     map[string]float64{"Aachen": 3.5, "Bonn": 2, "Celle": 0},
	}

	s := problem.NewSolution(res)
	require.Equal(t, res.Cost, s.Cost)
	require.Equal(t, res.Path, s.Path)
	require.Equal(t, res.ExpandedNodes, s.ExpandedNodes)
	require.Equal(t, map[string]float64{
		"city_Aachen": 3.5,
		"city_Bonn":   2,
		"city_Celle":  0,
	}, s.Heuristic)
}

func TestWriteReadSolution_RoundTrip(t *testing.T) {
	s := problem.Solution{
		Cost:          2.5,
		Path:          []string{"A", "B"},
		ExpandedNodes: 1,
		Heuristic:     map[string]float64{"city_A": 1.25, "city_B": 0},
	}

	var buf bytes.Buffer
	require.NoError(t, problem.WriteSolution(&buf, s))
	require.Contains(t, buf.String(), "solution:")
	require.Contains(t, buf.String(), "expanded_nodes: 1")

	got, err := problem.ReadSolution(&buf)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestSaveLoadSolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution-1.yaml")
	s := problem.Solution{
		Cost:          0,
		Path:          []string{"A"},
		ExpandedNodes: 0,
		Heuristic:     map[string]float64{"city_A": 0},
	}

	require.NoError(t, problem.SaveSolution(path, s))

	got, err := problem.LoadSolution(path)
	require.NoError(t, err)
	require.Equal(t, s, got)
}
