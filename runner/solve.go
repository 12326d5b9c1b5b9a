// Package runner orchestrates search runs around the routing core:
// solving one problem file under all three heuristic modes, feeding whole
// directories of problem files through the solver, and optionally
// validating produced outputs against expected ones.
//
// The core raises immediately on any failure and performs no recovery;
// this package defines the two propagation policies above it. Solve wraps
// the first core failure into a single descriptive error, while Batch
// logs failures and continues with the next input file, so one bad input
// never aborts a whole batch.
package runner

import (
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"wayfind/problem"
	"wayfind/routing"
)

// OutputFiles lists the fixed per-mode output filenames written by Solve,
// index-aligned with routing.Modes(): solution-1.yaml carries the
// uniform-cost run, solution-2.yaml the simple heuristic, solution-3.yaml
// the advanced one.
var OutputFiles = []string{"solution-1.yaml", "solution-2.yaml", "solution-3.yaml"}

// OutputFile returns the fixed output filename for one heuristic mode.
func OutputFile(mode routing.Mode) string {
	return OutputFiles[int(mode)]
}

// SolveMode runs a single search over g under an explicit mode and writes
// the solution record to outPath. Nothing is written when the search
// fails, so a failed run leaves no partial output behind.
func SolveMode(g *routing.Graph, mode routing.Mode, outPath string) error {
	res, err := routing.Search(g, mode)
	if err != nil {
		return fmt.Errorf("runner: %s search: %w", mode, err)
	}

	if err = problem.SaveSolution(outPath, problem.NewSolution(res)); err != nil {
		return fmt.Errorf("runner: write %s: %w", outPath, err)
	}

	log.Debugf("mode %s: cost=%g path=%v expanded=%d → %s",
		mode, res.Cost, res.Path, res.ExpandedNodes, outPath)

	return nil
}

// Solve loads the problem file at problemPath and runs all three
// heuristic modes against it, writing the fixed output triple into
// outDir. The graph is loaded once and shared read-only by the three
// independent runs. The first failure stops the sequence and is returned
// as one descriptive error.
func Solve(problemPath, outDir string) error {
	g, err := problem.Load(problemPath)
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}

	for _, mode := range routing.Modes() {
		if err = SolveMode(g, mode, filepath.Join(outDir, OutputFile(mode))); err != nil {
			return fmt.Errorf("solve %s: %w", problemPath, err)
		}
	}

	return nil
}
