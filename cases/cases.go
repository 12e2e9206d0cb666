// Package cases runs batches of rule evaluations described in YAML.
//
// A case file looks like:
//
//	cases:
//	  - name: up a whole step
//	    rule: IsTranspositionOf
//	    subject: D4,F4,A4
//	    x: C4,E4,G4
//	    y: 2
//	    expect: true
package cases

import (
	"fmt"
	"os"

	"github.com/jsphweid/phrasecheck/pitch"
	"github.com/jsphweid/phrasecheck/rule"
	"gopkg.in/yaml.v3"
)

type Case struct {
	Name    string `yaml:"name"`
	Rule    string `yaml:"rule"`
	Subject string `yaml:"subject"`
	X       string `yaml:"x"`
	K       int    `yaml:"k"`
	Y       int    `yaml:"y"`

	// nil when the case only reports
	Expect *bool `yaml:"expect"`
}

type File struct {
	Cases []Case `yaml:"cases"`
}

type Result struct {
	Case   Case
	Result bool
}

func (r Result) Passed() bool {
	return r.Case.Expect == nil || *r.Case.Expect == r.Result
}

func Parse(data []byte) ([]Case, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse cases: %w", err)
	}
	for i, c := range f.Cases {
		if c.Rule == "" {
			return nil, fmt.Errorf("case %d (%s): missing rule", i, c.Name)
		}
	}
	return f.Cases, nil
}

func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read cases file: %w", err)
	}
	return Parse(data)
}

func Run(c Case) (Result, error) {
	subject, err := pitch.ParsePhrase(c.Subject)
	if err != nil {
		return Result{}, fmt.Errorf("case %s: subject: %w", c.Name, err)
	}
	x, err := pitch.ParsePhrase(c.X)
	if err != nil {
		return Result{}, fmt.Errorf("case %s: x: %w", c.Name, err)
	}
	res, err := rule.Evaluate(c.Rule, subject, rule.Params{X: x, K: c.K, Y: c.Y})
	if err != nil {
		return Result{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	return Result{Case: c, Result: res}, nil
}

// RunAll stops at the first case that can't be evaluated.
func RunAll(cs []Case) ([]Result, error) {
	res := make([]Result, 0, len(cs))
	for _, c := range cs {
		r, err := Run(c)
		if err != nil {
			return res, err
		}
		res = append(res, r)
	}
	return res, nil
}
