package model

type Note struct {
	ReadableNoteName string `json:"readableNoteName" yaml:"readableNoteName"`
}

type Phrase = []Note

// pitch identifiers, one per note
type Notes = []uint8

func NewPhrase(names ...string) Phrase {
	res := make(Phrase, 0, len(names))
	for _, name := range names {
		res = append(res, Note{ReadableNoteName: name})
	}
	return res
}
