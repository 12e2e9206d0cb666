package pitch

import (
	"fmt"
	"testing"

	"github.com/jsphweid/phrasecheck/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownNotes(t *testing.T) {
	cases := map[string]uint8{
		"C4": 60, "D4": 62, "E4": 64, "F4": 65, "G4": 67, "A4": 69, "B4": 71,
		"C5": 72, "D5": 74, "E5": 76, "F5": 77, "G5": 79, "A5": 81,
	}
	for name, expected := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := Resolve(model.Note{ReadableNoteName: name})
			require.NoError(t, err)
			assert.Equal(t, expected, p)
		})
	}
}

func TestResolveUnrecognizedNote(t *testing.T) {
	_, err := Resolve(model.Note{ReadableNoteName: "H9"})
	assert := assert.New(t)
	assert.ErrorIs(err, ErrUnrecognizedNote)
	assert.Contains(err.Error(), "H9")
}

func TestResolveValue(t *testing.T) {
	assert := assert.New(t)

	p, err := ResolveValue(map[string]any{"readableNoteName": "G4"})
	assert.NoError(err)
	assert.Equal(uint8(67), p)

	p, err = ResolveValue(&model.Note{ReadableNoteName: "A5"})
	assert.NoError(err)
	assert.Equal(uint8(81), p)

	_, err = ResolveValue(map[string]any{"readableNoteName": "H9"})
	assert.ErrorIs(err, ErrUnrecognizedNote)
}

func TestResolveValueRejectsNonRecords(t *testing.T) {
	cases := []any{"C4", 60, nil, []any{"C4"}, map[string]any{"name": "C4"}, (*model.Note)(nil)}
	for _, v := range cases {
		t.Run(fmt.Sprintf("%T %v", v, v), func(t *testing.T) {
			_, err := ResolveValue(v)
			assert.ErrorIs(t, err, ErrInvalidNote)
		})
	}
}

func TestInvalidNoteErrorNamesValue(t *testing.T) {
	_, err := ResolveValue(42)
	assert.Contains(t, err.Error(), "42")
}

func TestConvertPreservesOrderAndLength(t *testing.T) {
	res, err := Convert(model.NewPhrase("G4", "C4", "G4", "A5"))
	require.NoError(t, err)
	assert.Equal(t, model.Notes{67, 60, 67, 81}, res)
}

func TestConvertEmpty(t *testing.T) {
	res, err := Convert(nil)
	require.NoError(t, err)
	assert.Len(t, res, 0)
}

func TestConvertFailsOnUnrecognizedNote(t *testing.T) {
	_, err := Convert(model.NewPhrase("C4", "H9", "E4"))
	assert := assert.New(t)
	assert.ErrorIs(err, ErrUnrecognizedNote)
	assert.Contains(err.Error(), "note 1")
}

func TestPhraseFromValues(t *testing.T) {
	phrase, err := PhraseFromValues([]any{
		map[string]any{"readableNoteName": "C4"},
		map[string]any{"readableNoteName": "H9"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.NewPhrase("C4", "H9"), phrase)

	_, err = PhraseFromValues([]any{map[string]any{"readableNoteName": "C4"}, "E4"})
	assert.ErrorIs(t, err, ErrInvalidNote)
}

func TestParsePhrase(t *testing.T) {
	assert := assert.New(t)

	phrase, err := ParsePhrase("C4,e4 G4")
	assert.NoError(err)
	assert.Equal(model.NewPhrase("C4", "E4", "G4"), phrase)

	phrase, err = ParsePhrase("")
	assert.NoError(err)
	assert.Len(phrase, 0)

	_, err = ParsePhrase("C4,H9")
	assert.ErrorIs(err, ErrUnrecognizedNote)
}

func TestNameOf(t *testing.T) {
	name, err := NameOf(72)
	assert.NoError(t, err)
	assert.Equal(t, "C5", name)

	_, err = NameOf(61)
	assert.ErrorIs(t, err, ErrUnrecognizedNote)
}

func TestNamesAreOrderedByPitch(t *testing.T) {
	names := Names()
	assert.Equal(t, "C4", names[0])
	assert.Equal(t, "A5", names[len(names)-1])
	for i := 1; i < len(names); i++ {
		prev, _ := Resolve(model.Note{ReadableNoteName: names[i-1]})
		curr, _ := Resolve(model.Note{ReadableNoteName: names[i]})
		assert.Less(t, prev, curr)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "C4,E4,G4", Format(model.NewPhrase("C4", "E4", "G4")))
}
