package runner

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	log "github.com/sirupsen/logrus"

	"wayfind/problem"
)

// floatMargin bounds the absolute difference tolerated between produced
// and expected floating-point fields.
const floatMargin = 1e-9

// Validate parses the produced and expected solution files and compares
// them field by field, with floats matched up to floatMargin. It reports
// whether the two records agree; a mismatch is logged with the full diff.
// Errors are limited to unreadable or unparsable files.
func Validate(producedPath, expectedPath string) (bool, error) {
	got, err := problem.LoadSolution(producedPath)
	if err != nil {
		return false, err
	}
	want, err := problem.LoadSolution(expectedPath)
	if err != nil {
		return false, err
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, floatMargin)); diff != "" {
		log.Errorf("validation failed for %s (-expected +produced):\n%s", producedPath, diff)

		return false, nil
	}

	log.Infof("validation passed for %s", producedPath)

	return true, nil
}
