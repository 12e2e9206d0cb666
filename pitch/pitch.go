package pitch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/phrasecheck/constants"
	"github.com/jsphweid/phrasecheck/model"
	"github.com/jsphweid/phrasecheck/util"
)

var (
	ErrUnrecognizedNote = errors.New("unrecognized note")
	ErrInvalidNote      = errors.New("invalid music note")
)

var namesByPitch = func() map[uint8]string {
	res := make(map[uint8]string, len(constants.NoteMap))
	for name, p := range constants.NoteMap {
		res[p] = name
	}
	return res
}()

func Resolve(note model.Note) (uint8, error) {
	p, ok := constants.NoteMap[note.ReadableNoteName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedNote, note.ReadableNoteName)
	}
	return p, nil
}

// ResolveValue resolves a note that has not been validated yet, such as an
// element of a decoded JSON array. Only note records are accepted.
func ResolveValue(v any) (uint8, error) {
	note, err := noteFromValue(v)
	if err != nil {
		return 0, err
	}
	return Resolve(note)
}

func noteFromValue(v any) (model.Note, error) {
	switch n := v.(type) {
	case model.Note:
		return n, nil
	case *model.Note:
		if n == nil {
			return model.Note{}, fmt.Errorf("%w: %v", ErrInvalidNote, v)
		}
		return *n, nil
	case map[string]any:
		name, ok := n["readableNoteName"].(string)
		if !ok {
			return model.Note{}, fmt.Errorf("%w: %v", ErrInvalidNote, v)
		}
		return model.Note{ReadableNoteName: name}, nil
	}
	return model.Note{}, fmt.Errorf("%w: %v", ErrInvalidNote, v)
}

func Convert(phrase model.Phrase) (model.Notes, error) {
	res := make(model.Notes, 0, len(phrase))
	for i, note := range phrase {
		p, err := Resolve(note)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		res = append(res, p)
	}
	return res, nil
}

// PhraseFromValues validates decoded input at the boundary. Names are not
// looked up here; the rules report unrecognized notes themselves.
func PhraseFromValues(values []any) (model.Phrase, error) {
	res := make(model.Phrase, 0, len(values))
	for i, v := range values {
		note, err := noteFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		res = append(res, note)
	}
	return res, nil
}

// ParsePhrase reads note names separated by commas or whitespace, e.g. "C4,E4 G4".
func ParsePhrase(s string) (model.Phrase, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	res := make(model.Phrase, 0, len(fields))
	for _, name := range fields {
		note := model.Note{ReadableNoteName: strings.ToUpper(name)}
		if _, err := Resolve(note); err != nil {
			return nil, err
		}
		res = append(res, note)
	}
	return res, nil
}

func NameOf(p uint8) (string, error) {
	name, ok := namesByPitch[p]
	if !ok {
		return "", fmt.Errorf("%w: no name for pitch %d", ErrUnrecognizedNote, p)
	}
	return name, nil
}

func Names() []string {
	return util.GetKeysSortedByValue(constants.NoteMap)
}

func Format(phrase model.Phrase) string {
	names := make([]string, 0, len(phrase))
	for _, note := range phrase {
		names = append(names, note.ReadableNoteName)
	}
	return strings.Join(names, ",")
}
