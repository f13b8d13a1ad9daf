package syllabify

import (
	"fmt"
	"io"
	"strings"
)

// Mode selects how a Syllabifier reports pronunciations it cannot syllabify.
type Mode uint8

const (
	// Strict returns an *Error for every failure.
	Strict Mode = iota
	// Tolerant returns an empty result and a nil error. Unless the
	// Syllabifier is Quiet, the error is traced as a diagnostic.
	Tolerant
)

func (m Mode) String() string {
	if m == Tolerant {
		return "tolerant"
	}
	return "strict"
}

// ExceptionReader yields explicit syllabifications one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (pronunciation string, syllables []string, err error)
}

// Syllabifier splits pronunciations into syllables.
//
// Besides the phonotactic rules, a Syllabifier may hold explicit
// syllabifications for single pronunciations, e.g. for compounds where the
// rules produce an unwanted split. Once exceptions are loaded, a Syllabifier
// may be used from multiple goroutines.
type Syllabifier struct {
	Mode       Mode
	Quiet      bool   // do not trace failures in Tolerant mode
	Identifier string // identifies the Syllabifier in diagnostics
	exceptions map[string][]string
}

// New creates a Syllabifier without exceptions.
func New(mode Mode) *Syllabifier {
	return &Syllabifier{
		Mode:       mode,
		Identifier: "syllabifier",
		exceptions: make(map[string][]string),
	}
}

var defaultStrict = New(Strict)
var defaultTolerant = New(Tolerant)

func defaultSyllabifier(mode Mode) *Syllabifier {
	if mode == Tolerant {
		return defaultTolerant
	}
	return defaultStrict
}

// Syllabify splits a pronunciation, given as a list of ARPABET tokens, into
// syllables. See (*Syllabifier).Syllabify.
func Syllabify(tokens []string, mode Mode) ([]string, error) {
	return defaultSyllabifier(mode).Syllabify(tokens)
}

// SyllabifyString splits a whitespace separated pronunciation into syllables.
func SyllabifyString(pronunciation string, mode Mode) ([]string, error) {
	return defaultSyllabifier(mode).SyllabifyString(pronunciation)
}

// Segment splits a pronunciation into structured syllables, always failing
// with an *Error for pronunciations which cannot be syllabified.
func Segment(tokens []string) ([]Syllable, error) {
	return defaultStrict.Segment(tokens)
}

// Syllabify splits a pronunciation into syllables. Every syllable is
// returned as its phones, separated by single spaces, uppercased, with stress
// digits preserved.
//
// Example:
//
//	[ "hh", "ae1", "ng", "m", "ae0", "n" ] => [ "HH AE1 NG", "M AE0 N" ].
//
// If the pronunciation cannot be syllabified, the result is empty. In Strict
// mode an *Error describes the failure.
func (s *Syllabifier) Syllabify(tokens []string) ([]string, error) {
	syllables, err := s.Segment(tokens)
	if err != nil {
		if s.Mode == Tolerant {
			if !s.Quiet {
				tracer().Infof("%s: %v", s.Identifier, err)
			}
			return nil, nil
		}
		return nil, err
	}
	ss := make([]string, len(syllables))
	for i, syll := range syllables {
		ss[i] = syll.String()
	}
	return ss, nil
}

// SyllabifyString splits a whitespace separated pronunciation into syllables.
//
// Example:
//
//	"K AE T" => [ "K AE T" ].
func (s *Syllabifier) SyllabifyString(pronunciation string) ([]string, error) {
	return s.Syllabify(strings.Fields(pronunciation))
}

// SyllabificationString returns the syllables of a pronunciation separated
// by " - ", or the empty string if it cannot be syllabified.
//
// Example:
//
//	"HH AE NG M AE N" => "HH AE NG - M AE N".
func (s *Syllabifier) SyllabificationString(pronunciation string) string {
	syllables, err := s.SyllabifyString(pronunciation)
	if err != nil {
		return ""
	}
	return strings.Join(syllables, " - ")
}

// Segment splits a pronunciation into structured syllables. Segment ignores
// the mode of s and always reports failures.
func (s *Syllabifier) Segment(tokens []string) ([]Syllable, error) {
	tokens = normalize(tokens)
	word := strings.Join(tokens, " ")
	phones, err := parsePhones(tokens, word)
	if err != nil {
		return nil, err
	}
	if syllables, found := s.exceptions[word]; found {
		return segmentException(syllables, word)
	}
	drafts, err := segment(phones, word)
	if err != nil {
		return nil, err
	}
	if err = rebalanceOnsets(drafts, word); err != nil {
		return nil, err
	}
	if err = checkCodas(drafts, word); err != nil {
		return nil, err
	}
	result := make([]Syllable, len(drafts))
	for i, d := range drafts {
		result[i] = d.Syllable
	}
	return result, nil
}

// --- Exceptions ------------------------------------------------------------

// AddException registers an explicit syllabification for one pronunciation.
// The syllables must contain exactly one vowel each and, joined together,
// reproduce the pronunciation.
//
// Example:
//
//	s.AddException("S W IY P S T EY K S", []string{"S W IY P", "S T EY K S"})
func (s *Syllabifier) AddException(pronunciation string, syllables []string) error {
	tokens := normalize(strings.Fields(pronunciation))
	word := strings.Join(tokens, " ")
	if _, err := parsePhones(tokens, word); err != nil {
		return err
	}
	norm := make([]string, len(syllables))
	for i, syll := range syllables {
		norm[i] = strings.Join(normalize(strings.Fields(syll)), " ")
	}
	if _, err := segmentException(norm, word); err != nil {
		return err
	}
	if joined := strings.Join(norm, " "); joined != word {
		return fmt.Errorf("exception syllables %q do not match pronunciation %q", joined, word)
	}
	if s.exceptions == nil {
		s.exceptions = make(map[string][]string)
	}
	s.exceptions[word] = norm
	return nil
}

// LoadExceptions loads exception entries from a streaming source.
func (s *Syllabifier) LoadExceptions(reader ExceptionReader) (err error) {
	for {
		var pron string
		var syllables []string
		pron, syllables, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err = s.AddException(pron, syllables); err != nil {
			return err
		}
	}
}

// LoadExceptionList loads explicit syllabifications from an in-memory map.
func (s *Syllabifier) LoadExceptionList(exceptions map[string][]string) error {
	for pron, syllables := range exceptions {
		if err := s.AddException(pron, syllables); err != nil {
			return err
		}
	}
	return nil
}

// segmentException converts normalized syllable strings of an exception into
// syllables. Each syllable must hold exactly one vowel.
func segmentException(syllables []string, word string) ([]Syllable, error) {
	result := make([]Syllable, 0, len(syllables))
	for _, syll := range syllables {
		tokens := strings.Fields(syll)
		phones, err := parsePhones(tokens, word)
		if err != nil {
			return nil, err
		}
		drafts, err := segment(phones, word)
		if err != nil {
			return nil, err
		}
		if len(drafts) != 1 {
			return nil, fmt.Errorf("exception syllable %q of %q must contain exactly one vowel", syll, word)
		}
		result = append(result, drafts[0].Syllable)
	}
	return result, nil
}

// --- Helpers ---------------------------------------------------------------

func joinPhones(phones []Phone) string {
	var b strings.Builder
	for i, p := range phones {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	return b.String()
}

func joinSymbols(phones []Phone) string {
	var b strings.Builder
	for i, p := range phones {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Symbol)
	}
	return b.String()
}
