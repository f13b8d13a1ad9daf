package syllabify

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a pronunciation could not be syllabified.
type ErrorKind uint8

const (
	NoError        ErrorKind = iota
	InvalidPhoneme           // token is not an ARPABET phone
	NoVowel                  // no syllable nucleus found
	BadOnset                 // onset of the first syllable is illegal
	BadCoda                  // some coda cluster is illegal
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidPhoneme:
		return "InvalidPhoneme"
	case NoVowel:
		return "NoVowel"
	case BadOnset:
		return "BadOnset"
	case BadCoda:
		return "BadCoda"
	}
	return "NoError"
}

// Error is returned for pronunciations which cannot be syllabified.
// All errors are deterministic: retrying the same input fails again.
type Error struct {
	Kind       ErrorKind
	Word       string // the normalized input, tokens joined by a single space
	Phone      string // offending token or cluster, if any
	Suggestion string // closest valid phone for InvalidPhoneme, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidPhoneme:
		if e.Suggestion != "" {
			return fmt.Sprintf("input %q contains non-ARPABET phoneme %q (did you mean %q?)",
				e.Word, e.Phone, e.Suggestion)
		}
		return fmt.Sprintf("input %q contains non-ARPABET phoneme %q", e.Word, e.Phone)
	case NoVowel:
		return fmt.Sprintf("input error: no vowel in %q", e.Word)
	case BadOnset:
		return fmt.Sprintf("bad onset cluster %q in %q", e.Phone, e.Word)
	case BadCoda:
		return fmt.Sprintf("impossible to syllabify %q according to English syllabification rules: bad coda %q",
			e.Word, e.Phone)
	}
	return fmt.Sprintf("syllabification of %q failed", e.Word)
}

// Is matches errors of the same kind, so that
//
//	errors.Is(err, syllabify.ErrBadCoda)
//
// works for any word.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidPhoneme = &Error{Kind: InvalidPhoneme}
	ErrNoVowel        = &Error{Kind: NoVowel}
	ErrBadOnset       = &Error{Kind: BadOnset}
	ErrBadCoda        = &Error{Kind: BadCoda}
)

// KindOf extracts the ErrorKind of err, or NoError if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}
