package syllabify

// Syllable is one syllable of a pronunciation: an optional onset, exactly
// one vowel as nucleus, and an optional coda.
type Syllable struct {
	Onset   []Phone
	Nucleus Phone
	Coda    []Phone
}

// Phones returns the phones of s in order.
func (s Syllable) Phones() []Phone {
	pp := make([]Phone, 0, len(s.Onset)+1+len(s.Coda))
	pp = append(pp, s.Onset...)
	pp = append(pp, s.Nucleus)
	pp = append(pp, s.Coda...)
	return pp
}

// String returns the phones of s, separated by single spaces.
func (s Syllable) String() string {
	return joinPhones(s.Phones())
}

// boundary flags a syllable adjacent to a word boundary. The start-of-word
// and end-of-word markers are pseudo phones: they take part in legality
// tests, but are never stored in a syllable's onset or coda.
type boundary uint8

const (
	sot boundary = 1 << iota // start of word precedes the onset
	eot                      // end of word follows the coda
)

// draft is a syllable under construction.
type draft struct {
	Syllable
	bounds boundary
}

func (d *draft) atWordStart() bool { return d.bounds&sot != 0 }

// segment performs the maximal-onset split: every vowel closes a syllable,
// taking all consonants since the previous vowel as its onset. Consonants
// after the last vowel become the coda of the last syllable.
func segment(phones []Phone, word string) ([]*draft, error) {
	var drafts []*draft
	var pending []Phone
	for _, p := range phones {
		if !p.IsVowel() {
			pending = append(pending, p)
			continue
		}
		drafts = append(drafts, &draft{
			Syllable: Syllable{Onset: pending, Nucleus: p},
		})
		pending = nil
	}
	if len(drafts) == 0 {
		return nil, &Error{Kind: NoVowel, Word: word}
	}
	drafts[0].bounds |= sot
	last := drafts[len(drafts)-1]
	last.Coda = append(last.Coda, pending...)
	last.bounds |= eot
	return drafts, nil
}
