// Package problem reads routing problem descriptions and writes solution
// records in their external YAML shapes.
//
// The input format names nodes without a prefix in the `cities` list and
// the `city_start`/`city_end` fields, but uses `city_<name>` keys for the
// per-node connection and heuristic blocks. All prefix handling lives in
// this package: the routing core only ever sees canonical node keys, and
// NewSolution re-applies the prefix when rendering the heuristic snapshot.
package problem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"wayfind/routing"
)

// ErrMalformed indicates a structurally invalid problem document:
// a missing section, a missing mandatory field, or a block of the wrong
// YAML kind.
var ErrMalformed = errors.New("problem: malformed problem document")

// keyPrefix precedes node names in block keys of the external format.
const keyPrefix = "city_"

// document is the top-level YAML layout of one problem file.
// The problem section mixes scalar fields, a list, and per-node blocks
// under dynamic keys, so it is decoded manually from a yaml.Node.
type document struct {
	Problem    yaml.Node `yaml:"problem"`
	Additional yaml.Node `yaml:"additional_information"`
}

// connectionBlock is the value of one `city_<name>` key in the problem
// section.
type connectionBlock struct {
	ConnectsTo map[string]float64 `yaml:"connects_to"`
}

// infoBlock is the value of one `city_<name>` key in the
// additional_information section.
type infoBlock struct {
	LineOfSightDistance float64 `yaml:"line_of_sight_distance"`
	AltitudeDifference  float64 `yaml:"altitude_difference"`
}

// Read parses one problem document from r and builds the validated
// routing.Graph. Structural defects yield a wrapped ErrMalformed;
// semantic defects (unknown start, negative cost, ...) surface as the
// routing package's own sentinel errors.
func Read(r io.Reader) (*routing.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if doc.Problem.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: missing problem section", ErrMalformed)
	}

	var (
		nodes       []string
		start, goal string
		haveStart   bool
		haveGoal    bool
		edges       = make(map[string]map[string]float64)
	)

	// The problem mapping is walked pairwise: Content holds alternating
	// key and value nodes.
	content := doc.Problem.Content
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i].Value, content[i+1]
		switch {
		case key == "cities":
			if err := value.Decode(&nodes); err != nil {
				return nil, fmt.Errorf("%w: cities: %v", ErrMalformed, err)
			}
		case key == "city_start":
			if err := value.Decode(&start); err != nil {
				return nil, fmt.Errorf("%w: city_start: %v", ErrMalformed, err)
			}
			haveStart = true
		case key == "city_end":
			if err := value.Decode(&goal); err != nil {
				return nil, fmt.Errorf("%w: city_end: %v", ErrMalformed, err)
			}
			haveGoal = true
		case strings.HasPrefix(key, keyPrefix):
			var block connectionBlock
			if err := value.Decode(&block); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
			}
			edges[strings.TrimPrefix(key, keyPrefix)] = block.ConnectsTo
		default:
			// Unknown keys are tolerated, matching the permissive input format.
		}
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: cities list is missing or empty", ErrMalformed)
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: city_start is missing", ErrMalformed)
	}
	if !haveGoal {
		return nil, fmt.Errorf("%w: city_end is missing", ErrMalformed)
	}

	info, err := readAdditional(&doc.Additional)
	if err != nil {
		return nil, err
	}

	return routing.NewGraph(nodes, edges, start, goal, info)
}

// readAdditional decodes the optional additional_information section into
// de-prefixed heuristic attributes. An absent section simply yields no
// attributes, which restricts the solvable modes to ModeNone.
func readAdditional(node *yaml.Node) (map[string]routing.HeuristicInfo, error) {
	if node.Kind == 0 {
		return nil, nil
	}

	blocks := make(map[string]infoBlock)
	if err := node.Decode(&blocks); err != nil {
		return nil, fmt.Errorf("%w: additional_information: %v", ErrMalformed, err)
	}

	info := make(map[string]routing.HeuristicInfo, len(blocks))
	for key, block := range blocks {
		info[strings.TrimPrefix(key, keyPrefix)] = routing.HeuristicInfo{
			LineOfSight:  block.LineOfSightDistance,
			AltitudeDiff: block.AltitudeDifference,
		}
	}

	return info, nil
}

// Load reads and parses the problem file at path.
func Load(path string) (*routing.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", path, err)
	}

	return g, nil
}
