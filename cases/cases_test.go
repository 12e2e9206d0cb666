package cases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/phrasecheck/pitch"
	"github.com/jsphweid/phrasecheck/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
cases:
  - name: up a fourth
    rule: IsTranspositionOf
    subject: F4,A4,C5
    x: C4,E4,G4
    y: 5
    expect: true
  - name: one wrong note
    rule: IsEqualToExceptFor
    subject: C4,D4,F4
    x: C4,D4,E4
    k: 1
    expect: true
  - name: short subject
    rule: IsEqualToExceptFor
    subject: C4
    x: C4,D4,E4
    expect: true
  - name: report only
    rule: IsLongerSequence
    subject: C4 D4
    x: C4
`

func TestParseAndRun(t *testing.T) {
	cs, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, cs, 4)
	assert.Equal(t, 5, cs[0].Y)
	assert.Nil(t, cs[3].Expect)

	results, err := RunAll(cs)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.True(results[0].Passed())
	assert.True(results[1].Passed())
	// only the common prefix is scored, so a single matching note isn't enough
	assert.False(results[2].Result)
	assert.False(results[2].Passed())
	assert.True(results[3].Result)
	assert.True(results[3].Passed())
}

func TestParseRequiresRule(t *testing.T) {
	_, err := Parse([]byte("cases:\n  - name: nothing\n    subject: C4\n"))
	assert.Error(t, err)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("cases: ["))
	assert.Error(t, err)
}

func TestRunReportsErrors(t *testing.T) {
	_, err := Run(Case{Name: "bad note", Rule: "Equals", Subject: "H9", X: "C4"})
	assert.ErrorIs(t, err, pitch.ErrUnrecognizedNote)

	_, err = Run(Case{Name: "bad rule", Rule: "Nope", Subject: "C4", X: "C4"})
	assert.ErrorIs(t, err, rule.ErrUnknownRule)

	_, err = Run(Case{Name: "negative k", Rule: "IsEqualToExceptFor", Subject: "C4", X: "C4", K: -1})
	assert.ErrorIs(t, err, rule.ErrInvalidParam)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	cs, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cs, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
