package syllabify

import (
	"reflect"
	"strings"
	"testing"
)

func legalOnsetConsonants() []string {
	var cc []string
	for _, c := range Consonants() {
		if c != "NG" {
			cc = append(cc, c)
		}
	}
	return cc
}

func legalCodaConsonants(exclude ...string) []string {
	skip := setOf(append([]string{"HH", "W", "Y"}, exclude...)...)
	var cc []string
	for _, c := range Consonants() {
		if _, ok := skip[c]; !ok {
			cc = append(cc, c)
		}
	}
	return cc
}

func TestPhoneTables(t *testing.T) {
	if n := len(Vowels()); n != 15 {
		t.Fatalf("expected 15 vowels, have %d", n)
	}
	if n := len(Consonants()); n != 24 {
		t.Fatalf("expected 24 consonants, have %d", n)
	}
	tests := []struct {
		symbol   string
		category Category
		voicing  Voicing
	}{
		{"K", Stop, Voiceless},
		{"B", Stop, Voiced},
		{"DH", Fricative, Voiced},
		{"HH", Fricative, Voiceless},
		{"CH", Affricate, Voiceless},
		{"JH", Affricate, Voiced},
		{"NG", Nasal, NoVoicing},
		{"Y", Approximant, NoVoicing},
		{"ER", Vowel, NoVoicing},
	}
	for _, tt := range tests {
		p, err := ParsePhone(tt.symbol)
		if err != nil {
			t.Fatal(err)
		}
		if p.Category() != tt.category || p.Voicing() != tt.voicing {
			t.Fatalf("%s: got %s/%s, want %s/%s", tt.symbol, p.Category(), p.Voicing(),
				tt.category, tt.voicing)
		}
	}
	if c, ok := CategoryOf("zh"); !ok || c != Fricative {
		t.Fatalf("expected zh to be a fricative, got %s", c)
	}
	if _, ok := CategoryOf("GH"); ok {
		t.Fatalf("GH is not an ARPABET phone")
	}
}

func TestIsNucleus(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"AH", true}, {"ah1", true}, {"Er0", true}, {"UH2", true},
		{"AH3", false}, {"AH12", false}, {"K", false}, {"K1", false},
		{"", false}, {"1", false}, {"A", false}, {"AHH", false},
	}
	for _, tt := range tests {
		if got := IsNucleus(tt.token); got != tt.want {
			t.Fatalf("IsNucleus(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParsePhoneKeepsStress(t *testing.T) {
	p, err := ParsePhone("ae1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Symbol != "AE" || p.Stress != PrimaryStress || p.String() != "AE1" {
		t.Fatalf("unexpected phone %+v", p)
	}
	if _, err := ParsePhone("T0"); err == nil {
		t.Fatalf("stress digit on consonant should be rejected")
	}
}

func phones(t *testing.T, pron string) []Phone {
	t.Helper()
	var pp []Phone
	for _, tok := range strings.Fields(pron) {
		p, err := ParsePhone(tok)
		if err != nil {
			t.Fatal(err)
		}
		pp = append(pp, p)
	}
	return pp
}

func TestLegalOnset(t *testing.T) {
	tests := []struct {
		cluster string
		start   bool
		want    bool
	}{
		{"", false, true},
		{"K", false, true},
		{"NG", false, false},
		{"P L", false, true},
		{"HH Y", false, true},
		{"TH W", false, true},
		{"V W", false, true},
		{"S P", false, true},
		{"S F", false, true},
		{"S M", false, true},
		{"S NG", false, false},
		{"SH M", false, true},
		{"S V", false, true},
		{"M R", false, true},
		{"N W", false, true},
		{"K S", false, false},
		{"NG M", false, false},
		{"S S", false, false}, // geminate
		{"Y Y", false, false}, // geminate
		{"S T R", false, true},
		{"S K W", false, true},
		{"S F R", false, true},
		{"S F L", false, false},
		{"M G L", true, false},
		{"S M Y", true, true},
		{"S M Y", false, false},
		{"S T R W", true, false},
	}
	for _, tt := range tests {
		if got := legalOnset(phones(t, tt.cluster), tt.start); got != tt.want {
			t.Fatalf("legalOnset(%q, start=%v) = %v, want %v", tt.cluster, tt.start, got, tt.want)
		}
	}
}

func TestLegalCoda(t *testing.T) {
	tests := []struct {
		cluster string
		want    bool
	}{
		{"", true},
		{"K", true},
		{"HH", false},
		{"W", false},
		{"Y", false},
		{"L K", true},
		{"L G", false},
		{"R L", true},
		{"NG K", true},
		{"K T", true},
		{"G Z", true},   // affix
		{"HH S", false}, // affix leaves HH alone
		{"T K", false},
		{"L P S", true},
		{"L P T", true},
		{"N D TH", true},
		{"K S TH", true},
		{"K S T", true},
		{"L F S", true},  // golfs
		{"NG K S", true}, // affix, then explicit pair
		{"K S TH S", true},
		{"L P T S", true}, // sculpts
		{"R M TH S", true},
		{"M P S T", true}, // glimpsed
		{"K T K S", false},
		{"N T S K", false},
		{"K S T S", true},
		{"L P S T S", false},
	}
	for _, tt := range tests {
		if got := legalCoda(phones(t, tt.cluster)); got != tt.want {
			t.Fatalf("legalCoda(%q) = %v, want %v", tt.cluster, got, tt.want)
		}
	}
}

func TestCVCSyllables(t *testing.T) {
	for _, o := range legalOnsetConsonants() {
		for _, v := range Vowels() {
			for _, c := range legalCodaConsonants() {
				pron := []string{o, v, c}
				got, err := Syllabify(pron, Strict)
				if err != nil {
					t.Fatalf("CVC %q should be syllabifiable: %v", pron, err)
				}
				if len(got) != 1 {
					t.Fatalf("CVC %q should be one syllable, got %q", pron, got)
				}
			}
		}
	}
}

func TestSZExtension(t *testing.T) {
	extendable := legalCodaConsonants("S", "SH", "Z", "ZH", "CH", "JH")
	for _, o := range legalOnsetConsonants() {
		for _, v := range Vowels() {
			for _, c := range extendable {
				s, _ := Syllabify([]string{o, v, c, "S"}, Tolerant)
				z, _ := Syllabify([]string{o, v, c, "Z"}, Tolerant)
				if reflect.DeepEqual(s, z) {
					t.Fatalf("%s %s %s + S/Z should differ, both are %q", o, v, c, s)
				}
			}
		}
	}
}

func TestTDExtension(t *testing.T) {
	extendable := legalCodaConsonants("T", "D")
	for _, o := range legalOnsetConsonants() {
		for _, v := range Vowels() {
			for _, c := range extendable {
				td, _ := Syllabify([]string{o, v, c, "T"}, Tolerant)
				dd, _ := Syllabify([]string{o, v, c, "D"}, Tolerant)
				if reflect.DeepEqual(td, dd) {
					t.Fatalf("%s %s %s + T/D should differ, both are %q", o, v, c, td)
				}
			}
		}
	}
}

func TestSingleSyllables(t *testing.T) {
	syllables := []string{
		// CCVC
		"P L EY", "D R IY M", "HH Y UW JH", "S L IY P", "G W AA M", "T W IH N", "K R AW D",
		// CVCC
		"HH EH L P", "W EH L SH", "F IH F TH", "L AH NG Z", "B EH L T", "T AE K T",
		// V
		"OW", "AY", "UW", "AA", "EY",
		// CVCCC
		"Y EH L P S", "K AE L K S", "W AO R M TH", "W IH L S T", "JH IH NG K S",
		// CCVCC
		"TH W AO R T", "K L AH T S", "B L AH N T", "F Y OW R D", "G R IH N CH",
		// s-clusters
		"S P OW R T", "S M AY L", "S F IH NG K S", "S P Y UW", "S T AH D", "S K W EY R",
		// word-initial /smj/
		"S M Y UW",
	}
	for _, syllable := range syllables {
		got, err := SyllabifyString(syllable, Strict)
		if err != nil {
			t.Fatalf("%q: %v", syllable, err)
		}
		if !reflect.DeepEqual(got, []string{syllable}) {
			t.Fatalf("%q should be a single syllable, got %q", syllable, got)
		}
	}
}

func TestLongWords(t *testing.T) {
	prons := map[string][]string{
		"S F R AH JH IH S T IH K S":   {"S F R AH", "JH IH", "S T IH K S"},
		"B L AE S T IH D":             {"B L AE", "S T IH D"},
		"S K L EY R AH":               {"S K L EY", "R AH"},
		"S T EH TH AH S K OW P":       {"S T EH", "TH AH", "S K OW P"},
		"AH S F IH K S IY EY T AH D":  {"AH", "S F IH K", "S IY", "EY", "T AH D"},
		"M AY K R AH S K AA P IH K":   {"M AY", "K R AH", "S K AA", "P IH K"},
		"N Y UH M AE T IH K S":        {"N Y UH", "M AE", "T IH K S"},
		"F L AE JH AH L EY SH AH N Z": {"F L AE", "JH AH", "L EY", "SH AH N Z"},
		"K AE M Y UW":                 {"K AE", "M Y UW"},
		"K AE S M Y UW":               {"K AE S", "M Y UW"}, // /smj/ only word-initially
		"AA S S AH":                   {"AA S", "S AH"},     // no geminate onsets
	}
	for pron, want := range prons {
		got, err := SyllabifyString(pron, Strict)
		if err != nil {
			t.Fatalf("%q: %v", pron, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%q: got %q, want %q", pron, got, want)
		}
	}
}

func TestCoverageAndStability(t *testing.T) {
	prons := []string{
		"HH AE1 NG M AE2 N",
		"AH0 S F IH1 K S IY0 EY2 T AH0 D",
		"F L AE2 JH AH0 L EY1 SH AH0 N Z",
		"S IH1 K S TH S",
		"EH K S T R AO1 R D AH0 N EH2 R IY0",
		"IH2 N T ER0 N AE1 SH AH0 N AH0 L",
	}
	for _, pron := range prons {
		got, err := SyllabifyString(pron, Strict)
		if err != nil {
			t.Fatalf("%q: %v", pron, err)
		}
		joined := strings.Join(got, " ")
		if joined != pron {
			t.Fatalf("syllables of %q do not reproduce the input: %q", pron, joined)
		}
		again, err := SyllabifyString(joined, Strict)
		if err != nil {
			t.Fatalf("re-syllabification of %q: %v", joined, err)
		}
		if !reflect.DeepEqual(again, got) {
			t.Fatalf("re-syllabification of %q unstable: %q vs %q", pron, again, got)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	s := New(Strict)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			var err error
			for j := 0; j < 100 && err == nil; j++ {
				_, err = s.SyllabifyString("AH S F IH K S IY EY T AH D")
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
