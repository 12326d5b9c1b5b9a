package problem

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"wayfind/routing"
)

// Solution is the external record of one search run, rendered under a
// top-level `solution:` key. Heuristic entries are keyed by the prefixed
// node name (`city_<name>`), mirroring the input format.
type Solution struct {
	Cost          float64            `yaml:"cost"`
	Path          []string           `yaml:"path"`
	ExpandedNodes int                `yaml:"expanded_nodes"`
	Heuristic     map[string]float64 `yaml:"heuristic"`
}

// solutionDocument wraps a Solution for (de)serialization.
type solutionDocument struct {
	Solution Solution `yaml:"solution"`
}

// NewSolution assembles the external record from an engine result.
// Pure transformation: the only change is re-prefixing the heuristic
// snapshot keys back into the external node-name namespace.
func NewSolution(res *routing.Result) Solution {
	heuristic := make(map[string]float64, len(res.Heuristic))
	for key, h := range res.Heuristic {
		heuristic[keyPrefix+key] = h
	}

	return Solution{
		Cost:          res.Cost,
		Path:          res.Path,
		ExpandedNodes: res.ExpandedNodes,
		Heuristic:     heuristic,
	}
}

// WriteSolution renders s to w as a YAML solution document.
func WriteSolution(w io.Writer, s Solution) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(solutionDocument{Solution: s}); err != nil {
		return fmt.Errorf("problem: encode solution: %w", err)
	}

	return enc.Close()
}

// SaveSolution writes s to the file at path, replacing any previous content.
func SaveSolution(path string, s Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = WriteSolution(f, s); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ReadSolution parses one solution document from r. Used by the batch
// validator to compare produced and expected outputs.
func ReadSolution(r io.Reader) (Solution, error) {
	var doc solutionDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return doc.Solution, nil
}

// LoadSolution reads and parses the solution file at path.
func LoadSolution(path string) (Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return Solution{}, err
	}
	defer f.Close()

	return ReadSolution(f)
}
