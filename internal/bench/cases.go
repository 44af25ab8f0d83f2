// Package bench runs batches of hands through the solver and reports each
// solution with its timing.
package bench

import (
	"fmt"
	"os"

	"github.com/cwbudde/countdown/internal/game"
	"gopkg.in/yaml.v3"
)

// Case is one hand to solve
type Case struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Numbers []int  `json:"numbers" yaml:"numbers"`
	Goal    int    `json:"goal" yaml:"goal"`
}

// Hand validates the case and builds its Hand
func (c Case) Hand() (game.Hand, error) {
	return game.NewHand(c.Numbers, c.Goal)
}

// caseFile is the on-disk layout of a case file:
//
//	cases:
//	  - numbers: [1, 3, 5, 8, 10, 50]
//	    goal: 462
type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// DefaultCases returns the reference hands used when no case file is given
func DefaultCases() []Case {
	return []Case{
		{Numbers: []int{1, 3, 5, 8, 10, 50}, Goal: 462},
		{Numbers: []int{3, 5, 6, 8, 9, 10}, Goal: 317},
		{Numbers: []int{2, 4, 7, 9, 25, 50}, Goal: 463},
		{Numbers: []int{1, 6, 8, 12, 25, 75}, Goal: 952},
		{Numbers: []int{1, 2, 3, 4, 6, 8}, Goal: 999},
		{Numbers: []int{2, 3, 5, 7, 11, 13}, Goal: 997},
		{Numbers: []int{1, 4, 6, 7, 8, 9}, Goal: 503},
		{Numbers: []int{2, 4, 6, 8, 10, 12}, Goal: 457},
	}
}

// LoadCases reads a YAML case file. Every case is validated; the first
// invalid one fails the load.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var f caseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse case file %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("case file %s contains no cases", path)
	}

	for i, c := range f.Cases {
		if _, err := c.Hand(); err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
	}
	return f.Cases, nil
}
