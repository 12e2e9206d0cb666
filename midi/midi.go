package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/phrasecheck/constants"
	"github.com/jsphweid/phrasecheck/model"
	"github.com/jsphweid/phrasecheck/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteStart struct {
	absTicks int64
	key      uint8
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	var blank smf.SMF

	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	return readSMF(bytes.NewReader(dat))
}

func readSMF(r io.Reader) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = fmt.Errorf("Error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	return res, nil
}

// ReadPhrase collects note starts from every track in playing order. Notes
// that begin on the same tick keep their track order.
func ReadPhrase(r io.Reader) (model.Phrase, error) {
	s, err := readSMF(r)
	if err != nil {
		return nil, err
	}

	var starts []noteStart
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				starts = append(starts, noteStart{absTicks: absTicks, key: key})
			}
		}
	}

	sort.SliceStable(starts, func(i, j int) bool {
		return starts[i].absTicks < starts[j].absTicks
	})

	res := make(model.Phrase, 0, len(starts))
	for _, start := range starts {
		name, err := pitch.NameOf(start.key)
		if err != nil {
			return nil, err
		}
		res = append(res, model.Note{ReadableNoteName: name})
	}
	return res, nil
}

func ReadPhraseFile(path string) (model.Phrase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	defer f.Close()
	return ReadPhrase(f)
}

// WritePhrase renders the phrase as a single track of quarter notes.
func WritePhrase(w io.Writer, phrase model.Phrase) error {
	keys, err := pitch.Convert(phrase)
	if err != nil {
		return err
	}

	var track smf.Track
	for _, key := range keys {
		track.Add(0, midi.NoteOn(constants.MidiChannel, key, constants.NoteVelocity))
		track.Add(constants.TicksPerQuarter, midi.NoteOff(constants.MidiChannel, key))
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	if err := s.Add(track); err != nil {
		return fmt.Errorf("Could not add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("Could not write midi: %w", err)
	}
	return nil
}

func WritePhraseFile(path string, phrase model.Phrase) error {
	buf := new(bytes.Buffer)
	if err := WritePhrase(buf, phrase); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("Write failed for midi file: %w", err)
	}
	return nil
}
