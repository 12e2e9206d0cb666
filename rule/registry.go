package rule

import (
	"errors"
	"fmt"

	"github.com/jsphweid/phrasecheck/model"
)

var (
	ErrUnknownRule  = errors.New("unknown rule")
	ErrInvalidParam = errors.New("invalid rule parameter")
)

// Params are bound once per rule instance. Rules ignore the ones they don't declare.
type Params struct {
	X model.Phrase
	K int
	Y int
}

type Rule struct {
	Name        string
	Description string
	Params      []string

	eval func(subject model.Phrase, p Params) (bool, error)
}

func (r Rule) Evaluate(subject model.Phrase, p Params) (bool, error) {
	if p.K < 0 && r.uses("k") {
		return false, fmt.Errorf("%w: k must be non-negative, got %d", ErrInvalidParam, p.K)
	}
	return r.eval(subject, p)
}

func (r Rule) uses(param string) bool {
	for _, v := range r.Params {
		if v == param {
			return true
		}
	}
	return false
}

func (r Rule) Info() model.RuleInfo {
	return model.RuleInfo{Name: r.Name, Description: r.Description, Params: r.Params}
}

var rules = []Rule{
	{
		Name:        "Equals",
		Description: "is equal to {{x|MusicPhrase}}",
		Params:      []string{"x"},
		eval: func(subject model.Phrase, p Params) (bool, error) {
			return Equals(subject, p.X)
		},
	},
	{
		Name:        "IsLongerSequence",
		Description: "is a longer sequence than {{x|MusicPhrase}}",
		Params:      []string{"x"},
		eval: func(subject model.Phrase, p Params) (bool, error) {
			return IsLongerSequence(subject, p.X)
		},
	},
	{
		Name:        "IsEqualToExceptFor",
		Description: "is equal to {{x|MusicPhrase}} except for {{k|NonnegativeInt}} notes",
		Params:      []string{"x", "k"},
		eval: func(subject model.Phrase, p Params) (bool, error) {
			return IsEqualToExceptFor(subject, p.X, p.K)
		},
	},
	{
		Name:        "IsTranspositionOf",
		Description: "is a transposition of {{x|MusicPhrase}} by {{y|Int}} semitones",
		Params:      []string{"x", "y"},
		eval: func(subject model.Phrase, p Params) (bool, error) {
			return IsTranspositionOf(subject, p.X, p.Y)
		},
	},
	{
		Name: "IsTranspositionOfExceptFor",
		Description: "is a transposition of {{x|MusicPhrase}} by {{y|Int}} semitones " +
			"except for {{k|NonnegativeInt}} notes",
		Params: []string{"x", "y", "k"},
		eval: func(subject model.Phrase, p Params) (bool, error) {
			return IsTranspositionOfExceptFor(subject, p.X, p.Y, p.K)
		},
	},
}

func All() []Rule {
	res := make([]Rule, len(rules))
	copy(res, rules)
	return res
}

func Lookup(name string) (Rule, error) {
	for _, r := range rules {
		if r.Name == name {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

func Evaluate(name string, subject model.Phrase, p Params) (bool, error) {
	r, err := Lookup(name)
	if err != nil {
		return false, err
	}
	return r.Evaluate(subject, p)
}
