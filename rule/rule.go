package rule

import (
	"github.com/jsphweid/phrasecheck/model"
	"github.com/jsphweid/phrasecheck/pitch"
	"github.com/jsphweid/phrasecheck/util"
)

func convertBoth(subject, x model.Phrase) (model.Notes, model.Notes, error) {
	user, err := pitch.Convert(subject)
	if err != nil {
		return nil, nil, err
	}
	target, err := pitch.Convert(x)
	if err != nil {
		return nil, nil, err
	}
	return user, target, nil
}

func Equals(subject, x model.Phrase) (bool, error) {
	user, target, err := convertBoth(subject, x)
	if err != nil {
		return false, err
	}
	if len(user) != len(target) {
		return false, nil
	}
	for i := range user {
		if user[i] != target[i] {
			return false, nil
		}
	}
	return true, nil
}

func IsLongerSequence(subject, x model.Phrase) (bool, error) {
	user, target, err := convertBoth(subject, x)
	if err != nil {
		return false, err
	}
	return len(user) > len(target), nil
}

// IsEqualToExceptFor scores only the common prefix of the two phrases. A
// subject shorter than x therefore loses every note it is missing.
func IsEqualToExceptFor(subject, x model.Phrase, k int) (bool, error) {
	user, target, err := convertBoth(subject, x)
	if err != nil {
		return false, err
	}

	needed := len(target) - k
	var counter int
	for i := 0; i < util.Min(len(user), len(target)); i++ {
		if user[i] == target[i] {
			counter += 1
		}
	}
	return counter >= needed, nil
}

// IsTranspositionOf checks raw lengths before converting, so a phrase of the
// wrong length is rejected even if it holds unrecognized notes.
func IsTranspositionOf(subject, x model.Phrase, y int) (bool, error) {
	if len(subject) != len(x) {
		return false, nil
	}
	user, target, err := convertBoth(subject, x)
	if err != nil {
		return false, err
	}
	for i := range target {
		if int(user[i])-y != int(target[i]) {
			return false, nil
		}
	}
	return true, nil
}

func IsTranspositionOfExceptFor(subject, x model.Phrase, y, k int) (bool, error) {
	user, target, err := convertBoth(subject, x)
	if err != nil {
		return false, err
	}

	targetLength := len(target)
	if len(user) != targetLength && len(user) < targetLength-k {
		return false, nil
	}

	needed := targetLength - k
	var counter int
	// a single note can't establish a transposition
	if len(user) > 1 {
		// positions past the end of the subject count as misses
		for i := 0; i < util.Min(len(user), targetLength); i++ {
			if int(user[i])-y == int(target[i]) {
				counter += 1
			}
		}
	}
	return counter >= needed, nil
}
