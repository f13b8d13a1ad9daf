package syllabify

import (
	"sort"
	"strconv"
	"strings"
)

// Category is the manner class of a phone.
type Category uint8

// Phone categories. Every consonant belongs to exactly one of the consonant
// categories.
const (
	NoCategory Category = iota
	Vowel
	Stop
	Fricative
	Affricate
	Nasal
	Approximant
)

func (c Category) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Stop:
		return "stop"
	case Fricative:
		return "fricative"
	case Affricate:
		return "affricate"
	case Nasal:
		return "nasal"
	case Approximant:
		return "approximant"
	}
	return "none"
}

// Voicing tells voiced from voiceless obstruents. Vowels, nasals and
// approximants have no voicing entry.
type Voicing uint8

const (
	NoVoicing Voicing = iota
	Voiceless
	Voiced
)

func (v Voicing) String() string {
	switch v {
	case Voiceless:
		return "voiceless"
	case Voiced:
		return "voiced"
	}
	return "none"
}

// Stress is the stress marker of a vowel.
type Stress int8

const (
	NoStress        Stress = -1
	Unstressed      Stress = 0
	PrimaryStress   Stress = 1
	SecondaryStress Stress = 2
)

// Phone is a single ARPABET phone, e.g. "K" or "AE1".
// Symbol is always uppercase and never carries the stress digit.
type Phone struct {
	Symbol string
	Stress Stress
}

// String returns the phone as it appeared in the input (uppercased).
func (p Phone) String() string {
	if p.Stress == NoStress {
		return p.Symbol
	}
	return p.Symbol + strconv.Itoa(int(p.Stress))
}

// Category returns the manner class of p.
func (p Phone) Category() Category {
	return categories[p.Symbol]
}

// Voicing returns the voicing class of p.
func (p Phone) Voicing() Voicing {
	return voicing[p.Symbol]
}

// IsVowel is true if p is a syllable nucleus.
func (p Phone) IsVowel() bool {
	return categories[p.Symbol] == Vowel
}

// --- Tables ----------------------------------------------------------------

// phoneSet is a read-only set of phone symbols.
type phoneSet map[string]struct{}

func setOf(symbols ...string) phoneSet {
	s := make(phoneSet, len(symbols))
	for _, sym := range symbols {
		s[sym] = struct{}{}
	}
	return s
}

func (s phoneSet) has(p Phone) bool {
	_, ok := s[p.Symbol]
	return ok
}

// The tables below are filled at package initialization and never written to
// afterwards.
var (
	stops        = setOf("K", "P", "T", "G", "B", "D")
	fricatives   = setOf("F", "DH", "HH", "S", "SH", "TH", "V", "Z", "ZH")
	affricates   = setOf("CH", "JH")
	nasals       = setOf("M", "N", "NG")
	approximants = setOf("L", "R", "W", "Y")

	voiceless = setOf("K", "P", "T", "F", "HH", "S", "SH", "TH", "CH")
	voiced    = setOf("G", "B", "D", "DH", "V", "Z", "ZH", "JH")

	vowels = setOf("AA", "AE", "AH", "AO", "AW", "AY", "EH", "ER", "EY",
		"IH", "IY", "OW", "OY", "UW", "UH")

	// consonants which may precede an inflectional /s/, /z/, /t/, /d/ in a coda
	sExtended = setOf("K", "P", "T", "F", "TH", "D", "NG")
	zExtended = setOf("G", "B", "D", "DH", "V", "M", "N", "NG", "L")
	tExtended = setOf("K", "P", "F", "S", "SH", "TH", "CH", "N")
	dExtended = setOf("G", "B", "DH", "V", "Z", "ZH", "JH", "M", "N", "NG")
)

var categories map[string]Category
var voicing map[string]Voicing

func init() {
	categories = make(map[string]Category, 39)
	for cat, set := range map[Category]phoneSet{
		Vowel:       vowels,
		Stop:        stops,
		Fricative:   fricatives,
		Affricate:   affricates,
		Nasal:       nasals,
		Approximant: approximants,
	} {
		for sym := range set {
			assert(categories[sym] == NoCategory, "phone categories must be disjoint")
			categories[sym] = cat
		}
	}
	voicing = make(map[string]Voicing, len(voiceless)+len(voiced))
	for sym := range voiceless {
		voicing[sym] = Voiceless
	}
	for sym := range voiced {
		voicing[sym] = Voiced
	}
}

// CategoryOf returns the category of an ARPABET symbol (without stress digit).
func CategoryOf(symbol string) (Category, bool) {
	c, ok := categories[strings.ToUpper(symbol)]
	return c, ok
}

// Vowels returns the vowel symbols in alphabetical order.
func Vowels() []string {
	return sortedSymbols(func(c Category) bool { return c == Vowel })
}

// Consonants returns the consonant symbols in alphabetical order.
func Consonants() []string {
	return sortedSymbols(func(c Category) bool { return c != Vowel })
}

func sortedSymbols(match func(Category) bool) []string {
	syms := make([]string, 0, len(categories))
	for sym, c := range categories {
		if match(c) {
			syms = append(syms, sym)
		}
	}
	sort.Strings(syms)
	return syms
}

// isConsonant is true for every symbol of the consonant phoneset.
func isConsonant(p Phone) bool {
	c := categories[p.Symbol]
	return c != NoCategory && c != Vowel
}
