package runner

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Options configures one Batch invocation.
type Options struct {
	// OutputDir is the directory receiving one subfolder per input file.
	// Empty means the input directory itself.
	OutputDir string

	// ExpectedDir, when non-empty, enables validation: every produced
	// solution file is compared against
	// <ExpectedDir>/<input stem>/<output file>.
	ExpectedDir string
}

// Report summarizes one Batch invocation.
type Report struct {
	// Solved counts input files whose three runs all succeeded.
	Solved int

	// Failed counts input files aborted by a load or search failure.
	Failed int

	// Checked counts produced solution files compared against an expected one.
	Checked int

	// Mismatched counts compared files whose contents differed.
	Mismatched int
}

// Batch feeds every `*.yaml` problem file in dir through Solve, writing
// each file's output triple into a subfolder named after the file stem.
//
// Failures follow the log-and-continue policy: a bad input file is
// reported via the log and counted in Report.Failed, and processing moves
// on to the next file. Only an unreadable input directory aborts the
// batch itself.
func Batch(dir string, opts Options) (Report, error) {
	var rep Report

	entries, err := os.ReadDir(dir)
	if err != nil {
		return rep, err
	}

	outRoot := opts.OutputDir
	if outRoot == "" {
		outRoot = dir
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".yaml" {
			continue
		}

		stem := strings.TrimSuffix(name, ".yaml")
		outDir := filepath.Join(outRoot, stem)
		if err = os.MkdirAll(outDir, 0o755); err != nil {
			log.Errorf("skipping %s: %v", name, err)
			rep.Failed++

			continue
		}

		if err = Solve(filepath.Join(dir, name), outDir); err != nil {
			log.Errorf("skipping %s: %v", name, err)
			rep.Failed++

			continue
		}
		rep.Solved++
		log.Infof("solved %s → %s", name, outDir)

		if opts.ExpectedDir != "" {
			rep.validate(outDir, filepath.Join(opts.ExpectedDir, stem))
		}
	}

	return rep, nil
}

// validate compares the produced output triple in outDir against the
// expected triple in expectedDir, updating the report counters.
// All validation problems are non-fatal and only logged.
func (rep *Report) validate(outDir, expectedDir string) {
	for _, name := range OutputFiles {
		produced := filepath.Join(outDir, name)
		expected := filepath.Join(expectedDir, name)

		match, err := Validate(produced, expected)
		if err != nil {
			log.Warnf("cannot validate %s: %v", produced, err)

			continue
		}

		rep.Checked++
		if !match {
			rep.Mismatched++
		}
	}
}
