package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/phrasecheck/cases"
	"github.com/jsphweid/phrasecheck/midi"
	"github.com/jsphweid/phrasecheck/model"
	"github.com/jsphweid/phrasecheck/pitch"
	"github.com/jsphweid/phrasecheck/rule"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errCasesFailed = errors.New("some cases did not match their expectation")

type checkFlags struct {
	rule        string
	subject     string
	subjectMidi string
	x           string
	k           int
	y           int
	casesPath   string
}

var checkOpts checkFlags

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&checkOpts.rule, "rule", "r", "Equals", "rule name, see the rules command")
	f.StringVarP(&checkOpts.subject, "subject", "s", "", "subject phrase, e.g. C4,E4,G4")
	f.StringVar(&checkOpts.subjectMidi, "subject-midi", "", "read the subject phrase from a MIDI file")
	f.StringVarP(&checkOpts.x, "x", "x", "", "reference phrase")
	f.IntVarP(&checkOpts.k, "k", "k", 0, "number of notes allowed to differ")
	f.IntVarP(&checkOpts.y, "y", "y", 0, "transposition in semitones")
	f.StringVar(&checkOpts.casesPath, "cases", "", "YAML file of cases to run instead of a single rule")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluates a rule",
	Long:  `Evaluates one rule against a subject phrase, or every case in a YAML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkOpts.casesPath != "" {
			return runCases(cmd, checkOpts.casesPath)
		}
		return runCheck(cmd, checkOpts)
	},
}

func loadSubject(opts checkFlags) (model.Phrase, error) {
	if opts.subjectMidi != "" {
		return midi.ReadPhraseFile(opts.subjectMidi)
	}
	return pitch.ParsePhrase(opts.subject)
}

func runCheck(cmd *cobra.Command, opts checkFlags) error {
	subject, err := loadSubject(opts)
	if err != nil {
		return err
	}
	x, err := pitch.ParsePhrase(opts.x)
	if err != nil {
		return err
	}

	logger.Debug("Evaluating rule",
		zap.String("rule", opts.rule),
		zap.String("subject", pitch.Format(subject)),
		zap.String("x", pitch.Format(x)),
		zap.Int("k", opts.k),
		zap.Int("y", opts.y))

	res, err := rule.Evaluate(opts.rule, subject, rule.Params{X: x, K: opts.k, Y: opts.y})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", res)
	return nil
}

func runCases(cmd *cobra.Command, path string) error {
	cs, err := cases.Load(path)
	if err != nil {
		return err
	}
	results, err := cases.RunAll(cs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var failed int
	for _, r := range results {
		status := "ok"
		if !r.Passed() {
			status = "FAIL"
			failed += 1
			logger.Warn("Case did not match expectation",
				zap.String("case", r.Case.Name),
				zap.Bool("result", r.Result))
		}
		fmt.Fprintf(out, "%-4s %s %s: %v\n", status, r.Case.Rule, r.Case.Name, r.Result)
	}
	fmt.Fprintf(out, "%v of %v cases passed\n", len(results)-failed, len(results))

	if failed > 0 {
		return errCasesFailed
	}
	return nil
}
